package emulator

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// skipTokenParam é o parâmetro de paginação usado no @odata.nextLink.
const skipTokenParam = "$skiptoken"

// collection mantém o estado em memória de uma coleção.
type collection struct {
	cfg     CollectionConfig
	records []map[string]interface{}
}

// Server emula um serviço de coleções estilo OData.
type Server struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

// New cria um servidor a partir da configuração. Os registros iniciais são
// copiados para o estado em memória do servidor.
func New(cfg Config) *Server {
	s := &Server{collections: make(map[string]*collection, len(cfg.Collections))}
	for _, c := range cfg.Collections {
		// Configurações montadas sem LoadConfig podem vir sem page_size;
		// páginas de tamanho zero nunca terminariam a cadeia de nextLink.
		if c.PageSize <= 0 {
			c.PageSize = defaultPageSize
		}
		records := make([]map[string]interface{}, len(c.Records))
		copy(records, c.Records)
		s.collections[c.Name] = &collection{cfg: c, records: records}
	}
	return s
}

// Router monta as rotas do emulador. A rota de exclusão é registrada antes
// da listagem para capturar o sufixo "(id)" do path.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/{collection}({id})", s.handleDelete).Methods(http.MethodDelete)
	router.HandleFunc("/{collection}/{id}", s.handleDelete).Methods(http.MethodDelete)
	router.HandleFunc("/{collection}", s.handleList).Methods(http.MethodGet)
	router.HandleFunc("/{collection}", s.handleCreate).Methods(http.MethodPost)
	return router
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["collection"]

	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[name]
	if !ok {
		sendResponse(w, http.StatusNotFound, map[string]string{"error": "collection not found"})
		return
	}

	page := 0
	if token := r.URL.Query().Get(skipTokenParam); token != "" {
		parsed, err := strconv.Atoi(token)
		if err != nil || parsed < 0 {
			sendResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid skiptoken"})
			return
		}
		page = parsed
	}

	size := col.cfg.PageSize
	start := page * size
	if start > len(col.records) {
		start = len(col.records)
	}
	end := start + size
	if end > len(col.records) {
		end = len(col.records)
	}

	body := map[string]interface{}{"value": col.records[start:end]}
	if end < len(col.records) {
		body["@odata.nextLink"] = fmt.Sprintf("http://%s%s?%s=%d",
			r.Host, r.URL.Path, skipTokenParam, page+1)
	}
	sendResponse(w, http.StatusOK, body)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["collection"]

	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[name]
	if !ok {
		sendResponse(w, http.StatusNotFound, map[string]string{"error": "collection not found"})
		return
	}

	var record map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		sendResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	id := recordID(record)
	if id == "" {
		id = uuid.NewString()
		record["id"] = id
	}
	col.records = append(col.records, record)

	if !col.cfg.OmitEntityID {
		w.Header().Set("OData-EntityId",
			fmt.Sprintf("http://%s/%s(%s)", r.Host, name, id))
	}
	sendResponse(w, http.StatusCreated, record)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name, id := vars["collection"], vars["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[name]
	if !ok {
		sendResponse(w, http.StatusNotFound, map[string]string{"error": "collection not found"})
		return
	}

	for i, record := range col.records {
		if recordID(record) == id {
			col.records = append(col.records[:i], col.records[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	sendResponse(w, http.StatusNotFound, map[string]string{"error": "record not found"})
}

// recordID extrai o id de um registro como texto.
func recordID(record map[string]interface{}) string {
	value, ok := record["id"]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

func sendResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Printf("Erro ao encode response: %v", err)
		}
	}
}
