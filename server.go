package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rulegate/eval"
	"rulegate/rule"
	"rulegate/ruleset"
)

//go:embed templates/index.html
var templates embed.FS

type server struct {
	logger  *zap.Logger
	catalog *ruleset.Catalog
	metrics *metrics
	index   *template.Template
	http    *http.Server
}

// formPage carries the form state back into the template: the submitted
// values, the verdict ("true"/"false", empty until a rule is evaluated) or
// the error message, rendered verbatim.
type formPage struct {
	Rule       string
	Age        string
	Department string
	Income     string
	Spend      string
	Presets    []ruleset.Preset
	Result     string
	Error      string
}

func newServer(addr string, logger *zap.Logger, catalog *ruleset.Catalog, m *metrics) (*server, error) {
	index, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	s := &server{
		logger:  logger,
		catalog: catalog,
		metrics: m,
		index:   index,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.Handle("/metrics", m.handler())

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

func (s *server) start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *server) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("stopping server")

	return s.http.Shutdown(ctx)
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := &formPage{Presets: s.catalog.Presets()}

	if r.Method == http.MethodPost {
		s.evaluateForm(r, page)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, page); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
	}
}

func (s *server) evaluateForm(r *http.Request, page *formPage) {
	requestID := uuid.NewString()
	started := time.Now()

	page.Rule = r.FormValue("rule")
	page.Age = r.FormValue("age")
	page.Department = r.FormValue("department")
	page.Income = r.FormValue("income")
	page.Spend = r.FormValue("spend")

	verdict, err := evaluateRule(page)
	if err != nil {
		page.Error = fmt.Sprintf("Error: %s", err)
		s.metrics.observe("error", time.Since(started).Seconds())
		s.logger.Warn("rule evaluation failed",
			zap.String("request_id", requestID),
			zap.String("rule", page.Rule),
			zap.Error(err),
		)
		return
	}

	page.Result = strconv.FormatBool(verdict)
	s.metrics.observe(page.Result, time.Since(started).Seconds())
	s.logger.Info("rule evaluated",
		zap.String("request_id", requestID),
		zap.String("rule", page.Rule),
		zap.Bool("result", verdict),
		zap.Duration("took", time.Since(started)),
	)
}

func evaluateRule(page *formPage) (bool, error) {
	record, err := buildRecord(page)
	if err != nil {
		return false, err
	}

	tree, err := rule.Combine([]string{page.Rule}, rule.And)
	if err != nil {
		return false, err
	}

	return eval.Evaluate(tree, record)
}

// buildRecord assembles the evaluation record from the form fields. The
// department value is lower-cased to match attribute-name normalization; the
// numeric fields must be integers.
func buildRecord(page *formPage) (map[string]any, error) {
	record := map[string]any{
		"department": strings.ToLower(strings.TrimSpace(page.Department)),
	}

	for name, raw := range map[string]string{
		"age":    page.Age,
		"income": page.Income,
		"spend":  page.Spend,
	} {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("field '%s' must be an integer", name)
		}

		record[name] = n
	}

	return record, nil
}
