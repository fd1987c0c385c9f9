// Package web serve o dashboard renderizado como uma página HTML única.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

const shutdownTimeout = 5 * time.Second

type chartView struct {
	ID    string
	Title string
	SVG   template.HTML
}

type sectionView struct {
	Anchor string
	Title  string
	Text   string
	Charts []chartView
}

type pageView struct {
	Report      entity.Report
	Correlation string
	Sections    []sectionView
}

// Server publica um dashboard já calculado. As respostas são geradas uma vez e nunca mudam.
type Server struct {
	console types.ConsoleInterface
	page    []byte
	charts  map[string][]byte
}

// NewServer renderiza a página e indexa os SVGs por id de gráfico.
func NewServer(page repository.DashboardPage, console types.ConsoleInterface) (*Server, error) {
	charts := make(map[string][]byte, len(page.Charts))
	for _, c := range page.Charts {
		charts[c.ID] = c.SVG
	}

	view := pageView{
		Report:      page.Report,
		Correlation: page.Report.Correlation.Formatted(),
	}
	for _, s := range page.Sections {
		sv := sectionView{Anchor: anchor(s.Title), Title: s.Title, Text: s.Text}
		for _, spec := range s.Charts {
			cv := chartView{ID: spec.ID, Title: spec.Title}
			if svg, ok := charts[spec.ID]; ok {
				cv.SVG = template.HTML(inlineSVG(svg))
			}
			sv.Charts = append(sv.Charts, cv)
		}
		view.Sections = append(view.Sections, sv)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("error rendering dashboard page: %w", err)
	}

	return &Server{console: console, page: buf.Bytes(), charts: charts}, nil
}

// Handler devolve as rotas do dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /charts/{file}", s.handleChart)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return s.logRequests(mux)
}

// ListenAndServe serve o dashboard em addr até o contexto ser cancelado.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.console.LogSuccess("Dashboard available at %s", displayURL(addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error starting web server on %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.console.LogInfo("Shutting down web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down web server: %w", err)
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.page)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	id, ok := strings.CutSuffix(r.PathValue("file"), ".svg")
	svg, found := s.charts[id]
	if !ok || !found {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.console.LogInfo("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}

// Publisher implementa o DashboardPublisher sobre o Server.
type Publisher struct {
	console types.ConsoleInterface
}

// NewPublisher cria um novo Publisher.
func NewPublisher(console types.ConsoleInterface) repository.DashboardPublisher {
	return &Publisher{console: console}
}

// Publish serve a página até o contexto ser cancelado.
func (p *Publisher) Publish(ctx context.Context, addr string, page repository.DashboardPage) error {
	srv, err := NewServer(page, p.console)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, addr)
}

// inlineSVG descarta o prólogo XML para o SVG poder ser embutido no HTML.
func inlineSVG(svg []byte) string {
	s := string(svg)
	if i := strings.Index(s, "<svg"); i > 0 {
		return s[i:]
	}
	return s
}

func anchor(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "-"):
			b.WriteByte('-')
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
