package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"remi-card/internal/domain/localizer"
	"remi-card/internal/domain/model"
	"remi-card/internal/ports"
)

type Server struct {
	editor    ports.EditorPort
	faces     ports.FacePort
	localizer ports.LocalizerPort
	ha        ports.HomeAssistantPort
	matcher   language.Matcher
}

// NewServer wires the card API. ha may be nil when no Home Assistant
// instance is configured.
func NewServer(editor ports.EditorPort, faces ports.FacePort, l ports.LocalizerPort, ha ports.HomeAssistantPort) *Server {
	return &Server{
		editor:    editor,
		faces:     faces,
		localizer: l,
		ha:        ha,
		matcher:   newMatcher(l.Languages()),
	}
}

// The first tag is what the matcher reports when nothing matches.
func newMatcher(langs []string) language.Matcher {
	tags := []language.Tag{language.Make(localizer.DefaultLanguage)}
	for _, lang := range langs {
		if lang == localizer.DefaultLanguage {
			continue
		}
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return language.NewMatcher(tags)
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/localize", s.handleLocalize)
	mux.HandleFunc("/api/translations", s.handleTranslations)
	mux.HandleFunc("/api/faces", s.handleFaces)
	mux.HandleFunc("/api/faces/", s.handleFace)
	mux.HandleFunc("/api/editor", s.handleEditor)
	mux.HandleFunc("/admin/config", s.handleConfig)
	mux.HandleFunc("/admin/config/change", s.handleConfigChange)
	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

// resolveLanguage picks the lang query parameter, then Accept-Language,
// then the Home Assistant user language, then English.
func (s *Server) resolveLanguage(r *http.Request) string {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		return lang
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			tag, _, confidence := s.matcher.Match(tags...)
			if confidence != language.No {
				base, _ := tag.Base()
				return base.String()
			}
		}
	}

	if s.ha != nil && s.ha.IsConfigured() {
		lang, err := s.ha.GetLanguage(r.Context())
		if err == nil {
			return lang
		}
		log.Printf("Error reading HA language: %v", err)
	}

	return localizer.DefaultLanguage
}

func (s *Server) handleLocalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing key", http.StatusBadRequest)
		return
	}
	lang := s.resolveLanguage(r)

	writeJSON(w, map[string]string{
		"key":      key,
		"language": s.localizer.ServedLanguage(lang),
		"value":    s.localizer.Localize(key, lang),
	})
}

func (s *Server) handleTranslations(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	lang, tree := s.localizer.Translations(s.resolveLanguage(r))
	writeJSON(w, map[string]interface{}{
		"language":     lang,
		"translations": tree,
	})
}

func (s *Server) handleFaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.faces.Faces(s.resolveLanguage(r)))
}

func (s *Server) handleFace(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	state := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/faces/"), "/")
	if state == "" || strings.Contains(state, "/") {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, s.faces.Face(state, s.resolveLanguage(r)))
}

func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	form, err := s.editor.Form(r.Context(), s.resolveLanguage(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, form)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		cfg, err := s.editor.Config(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, cfg)
	case "PUT":
		var cfg model.CardConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.editor.Replace(r.Context(), &cfg); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, model.ConfigChanged{Config: cfg})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type changeRequest struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

func (s *Server) handleConfigChange(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req changeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg, err := s.editor.Change(r.Context(), req.Field, req.Value)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, model.ConfigChanged{Config: *cfg})
}

func statusFor(err error) int {
	if errors.Is(err, model.ErrUnknownField) ||
		errors.Is(err, model.ErrInvalidValue) ||
		errors.Is(err, model.ErrInvalidConfig) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
