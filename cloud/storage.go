package cloud

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// DefaultPresignExpiry é a validade padrão das URLs pré-assinadas.
const DefaultPresignExpiry = 120 * time.Second

// S3Client abstrai o cliente S3 (permite mocking).
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Presigner abstrai o presign client do S3 (permite mocking).
type S3Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// SaveOptions configura a gravação no S3.
type SaveOptions struct {
	// ServerSideEncryption define o tipo de criptografia (ex: "aws:kms").
	// Quando informado, KMSKeyID também é obrigatório.
	ServerSideEncryption string
	// KMSKeyID é a chave KMS usada na criptografia server-side.
	KMSKeyID string
}

// LoadFileFromS3 lê um arquivo do bucket e devolve seu conteúdo em bytes.
func LoadFileFromS3(ctx context.Context, region, bucket, filename string) ([]byte, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: filename não informado", ErrInvalidInput)
	}
	if bucket == "" {
		return nil, fmt.Errorf("%w: bucket não informado", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return loadFileInternal(ctx, s3.NewFromConfig(cfg), bucket, filename)
}

// loadFileInternal: lógica pura testável via mock.
func loadFileInternal(ctx context.Context, client S3Client, bucket, filename string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &filename,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar %s do S3: %w", filename, err)
	}
	defer out.Body.Close()

	contents, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler corpo de %s: %w", filename, err)
	}
	return contents, nil
}

// SaveFileToS3 grava um arquivo no bucket, com SSE-KMS opcional.
//
// Conteúdo vazio é rejeitado antes de qualquer chamada; criptografia
// server-side sem chave KMS também.
func SaveFileToS3(ctx context.Context, region, bucket, filename string, contents []byte, opts *SaveOptions) error {
	if filename == "" {
		return fmt.Errorf("%w: filename não informado", ErrInvalidInput)
	}
	if bucket == "" {
		return fmt.Errorf("%w: bucket não informado", ErrInvalidInput)
	}
	if len(contents) == 0 {
		return fmt.Errorf("%w: conteúdo do arquivo vazio", ErrInvalidInput)
	}
	if opts != nil && opts.ServerSideEncryption != "" && opts.KMSKeyID == "" {
		return fmt.Errorf("%w: SSE solicitado sem chave KMS", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return err
	}
	return saveFileInternal(ctx, s3.NewFromConfig(cfg), bucket, filename, contents, opts)
}

// saveFileInternal: lógica pura testável via mock.
func saveFileInternal(ctx context.Context, client S3Client, bucket, filename string, contents []byte, opts *SaveOptions) error {
	input := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &filename,
		Body:   bytes.NewReader(contents),
	}
	if opts != nil && opts.ServerSideEncryption != "" {
		input.ServerSideEncryption = types.ServerSideEncryption(opts.ServerSideEncryption)
		input.SSEKMSKeyId = &opts.KMSKeyID
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("erro ao salvar %s no S3: %w", filename, err)
	}
	return nil
}

// PresignedGetURL gera uma URL pré-assinada somente-leitura para um arquivo
// no bucket. expiry igual a zero aplica DefaultPresignExpiry.
func PresignedGetURL(ctx context.Context, region, bucket, filename string, expiry time.Duration) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: filename não informado", ErrInvalidInput)
	}
	if bucket == "" {
		return "", fmt.Errorf("%w: bucket não informado", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return "", err
	}
	presigner := s3.NewPresignClient(s3.NewFromConfig(cfg))
	return presignedGetURLInternal(ctx, presigner, bucket, filename, expiry)
}

// presignedGetURLInternal: lógica pura testável via mock.
func presignedGetURLInternal(ctx context.Context, presigner S3Presigner, bucket, filename string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}

	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &filename,
	}, func(po *s3.PresignOptions) {
		po.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("erro ao gerar URL pré-assinada para %s: %w", filename, err)
	}
	return req.URL, nil
}
