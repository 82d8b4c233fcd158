package server

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/omar-hanafy/country-selector/pkg/config"
	"github.com/omar-hanafy/country-selector/pkg/country"
	"github.com/omar-hanafy/country-selector/pkg/search"
)

// Server handles the IPC for country lookups
type Server struct {
	finder *search.Finder
	set    *country.Set
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a lookup server using stdin/stdout for IPC
func NewServer(finder *search.Finder, set *country.Set, cfg *config.Config) *Server {
	return NewServerWithStreams(finder, set, cfg, os.Stdin, os.Stdout)
}

// NewServerWithStreams creates a lookup server over explicit streams.
func NewServerWithStreams(finder *search.Finder, set *country.Set, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		finder: finder,
		set:    set,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes its end of the pipe.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	s.send(map[string]string{"status": "ready"})

	for {
		var request QueryRequest
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(request QueryRequest) {
	switch request.Action {
	case "":
		s.handleQuery(request)
	case "list":
		if request.Limit < 1 {
			request.Limit = s.set.Len()
		}
		s.respondWith(request, s.set.All(), 0)
	case "health":
		s.send(map[string]string{"id": request.ID, "status": "ok"})
	default:
		s.sendError(request.ID, "unknown action: "+request.Action, 400)
	}
}

// handleQuery validates and answers one search request
func (s *Server) handleQuery(request QueryRequest) {
	if request.Query == "" {
		s.sendError(request.ID, "missing 'q' parameter", 400)
		log.Debug("Query is empty in request")
		return
	}
	if len(request.Query) > s.cfg.Server.MaxQueryLen {
		s.sendError(request.ID, "query exceeds maximum length", 400)
		log.Debug("Query is too long in request")
		return
	}

	start := time.Now()
	records := s.finder.WhereText(request.Query, s.set)
	s.respondWith(request, records, time.Since(start))
}

func (s *Server) respondWith(request QueryRequest, records []*country.Record, elapsed time.Duration) {
	limit := request.Limit
	if limit < 1 {
		limit = s.cfg.Server.DefaultLimit
	}
	if len(records) > limit {
		records = records[:limit]
	}

	countries := make([]ResultCountry, len(records))
	for i, rec := range records {
		countries[i] = ResultCountry{
			ISO:  rec.ISOCode,
			Name: rec.DisplayName,
			Dial: rec.DialCode,
			Rank: uint16(i + 1),
		}
	}

	s.send(QueryResponse{
		ID:        request.ID,
		Countries: countries,
		Count:     len(countries),
		TimeTaken: elapsed.Microseconds(),
	})
}

// send encodes one response; encoding failures are logged, not fatal.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(QueryError{ID: id, Error: message, Code: code})
}
