// Package server exposes the loan and unit calculators over HTTP for the site's forms.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/estate-calc/internal/cache"
	"github.com/iwvelando/estate-calc/internal/calculator"
	"github.com/iwvelando/estate-calc/pkg/loans"
	"github.com/iwvelando/estate-calc/pkg/mathutil"
	"github.com/iwvelando/estate-calc/pkg/units"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeMsgpack = "application/msgpack"

	requestTimeout = 30 * time.Second
)

// Options wires the handler's collaborators. Zero values select defaults: a
// no-op logger, no cache, no rate limiting and the default body limit.
type Options struct {
	Logger         *zap.Logger
	Cache          cache.Repository
	CacheTTL       time.Duration
	Limiter        *RateLimiter
	MaxBodySize    int64
	AllowedOrigins []string
	Version        string
}

type handler struct {
	logger      *zap.Logger
	calc        *loans.Calculator
	cache       cache.Repository
	cacheTTL    time.Duration
	limiter     *RateLimiter
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultConfig().BodySizeBytes()
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:      logger,
		calc:        loans.NewCalculator(logger),
		cache:       opts.Cache,
		cacheTTL:    opts.CacheTTL,
		limiter:     opts.Limiter,
		maxBodySize: maxBodySize,
		version:     version,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/version", h.handleVersion)
		r.Get("/units", h.handleUnits)
		r.Post("/emi", h.handleEMI)
		r.Post("/convert", h.handleConvert)
	})

	return r
}

type scheduleRow struct {
	Period    int     `json:"period" msgpack:"period"`
	Payment   float64 `json:"payment" msgpack:"payment"`
	Interest  float64 `json:"interest" msgpack:"interest"`
	Principal float64 `json:"principal" msgpack:"principal"`
	Balance   float64 `json:"balance" msgpack:"balance"`
}

type emiResponse struct {
	MonthlyPayment float64       `json:"monthlyPayment" msgpack:"monthlyPayment"`
	TotalInterest  float64       `json:"totalInterest" msgpack:"totalInterest"`
	TotalAmount    float64       `json:"totalAmount" msgpack:"totalAmount"`
	TenureMonths   int           `json:"tenureMonths" msgpack:"tenureMonths"`
	Schedule       []scheduleRow `json:"schedule" msgpack:"schedule"`
}

type convertResponse struct {
	OK      bool    `json:"ok" msgpack:"ok"`
	Value   float64 `json:"value" msgpack:"value"`
	Display string  `json:"display" msgpack:"display"`
}

type unitFactor struct {
	Unit  string  `json:"unit" msgpack:"unit"`
	Ratio float64 `json:"ratio" msgpack:"ratio"`
}

type familyUnits struct {
	Family string       `json:"family" msgpack:"family"`
	Base   string       `json:"base" msgpack:"base"`
	Units  []unitFactor `json:"units" msgpack:"units"`
}

// formValue accepts a form field sent either as a JSON string or a bare number.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", trimmed)
	}
	*v = formValue(n.String())
	return nil
}

type emiRequest struct {
	LoanAmount   formValue `json:"loanAmount"`
	InterestRate formValue `json:"interestRate"`
	LoanTenure   formValue `json:"loanTenure"`
	TenureType   formValue `json:"tenureType"`
}

type convertRequest struct {
	Family formValue `json:"family"`
	Value  formValue `json:"value"`
	From   formValue `json:"from"`
	To     formValue `json:"to"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleUnits(w http.ResponseWriter, r *http.Request) {
	families := units.Families()
	payload := make([]familyUnits, 0, len(families))
	for _, family := range families {
		table, err := units.TableFor(family)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleUnits")
			return
		}
		entry := familyUnits{Family: string(family), Base: string(table.Base())}
		for _, factor := range table.Factors {
			entry.Units = append(entry.Units, unitFactor{Unit: string(factor.Unit), Ratio: factor.Ratio})
		}
		payload = append(payload, entry)
	}
	h.writeResponse(w, r, http.StatusOK, payload)
}

func (h *handler) handleEMI(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEMI"

	form, err := h.decodeLoanForm(w, r)
	if err != nil {
		h.respondDecodeError(w, err, op)
		return
	}

	in, err := form.Input()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	full := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("full")), "true")
	key := cache.PlanKey(in, full)

	if resp, ok := h.cachedPlan(r.Context(), key); ok {
		w.Header().Set("X-Cache", "HIT")
		h.writeResponse(w, r, http.StatusOK, resp)
		return
	}

	plan := h.calc.Plan(in, full)
	resp := buildEMIResponse(plan)
	if !resp.finite() {
		h.respondErrorWithOp(w, http.StatusUnprocessableEntity, "loan terms produce a result out of range", op)
		return
	}
	h.storePlan(r.Context(), key, resp)

	h.logger.Info("loan plan computed",
		zap.String("op", op),
		zap.Float64("monthly_payment", resp.MonthlyPayment),
		zap.Int("tenure_months", resp.TenureMonths),
		zap.Int("rows", len(resp.Schedule)),
	)

	w.Header().Set("X-Cache", "MISS")
	h.writeResponse(w, r, http.StatusOK, resp)
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConvert"

	form, err := h.decodeConverterForm(w, r)
	if err != nil {
		h.respondDecodeError(w, err, op)
		return
	}

	result, err := form.Recompute()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, units.ErrUnknownUnit) || errors.Is(err, units.ErrUnknownFamily) {
			status = http.StatusBadRequest
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	h.writeResponse(w, r, http.StatusOK, convertResponse{
		OK:      result.OK,
		Value:   result.Value,
		Display: result.Display(),
	})
}

func buildEMIResponse(plan loans.Plan) emiResponse {
	resp := emiResponse{
		MonthlyPayment: plan.Result.MonthlyPayment,
		TotalInterest:  plan.Result.TotalInterest,
		TotalAmount:    plan.Result.TotalAmount,
		TenureMonths:   plan.TenureMonths,
		Schedule:       make([]scheduleRow, 0, len(plan.Schedule)),
	}
	for _, row := range plan.Schedule {
		resp.Schedule = append(resp.Schedule, scheduleRow{
			Period:    row.Period,
			Payment:   row.Payment,
			Interest:  row.Interest,
			Principal: row.Principal,
			Balance:   row.Balance,
		})
	}
	return resp
}

// finite reports whether every number in the response can be encoded.
func (r emiResponse) finite() bool {
	values := []float64{r.MonthlyPayment, r.TotalInterest, r.TotalAmount}
	for _, row := range r.Schedule {
		values = append(values, row.Payment, row.Interest, row.Principal, row.Balance)
	}
	for _, v := range values {
		if !mathutil.IsFinite(v) {
			return false
		}
	}
	return true
}

func (h *handler) cachedPlan(ctx context.Context, key string) (emiResponse, bool) {
	if h.cache == nil {
		return emiResponse{}, false
	}

	data, ok, err := h.cache.Get(ctx, key)
	if err != nil {
		h.logger.Warn("cache lookup failed",
			zap.String("op", "server.cachedPlan"),
			zap.String("key", key),
			zap.Error(err),
		)
		return emiResponse{}, false
	}
	if !ok {
		return emiResponse{}, false
	}

	var resp emiResponse
	if err := msgpack.Unmarshal(data, &resp); err != nil || !resp.finite() {
		h.logger.Warn("discarding unusable cache entry",
			zap.String("op", "server.cachedPlan"),
			zap.String("key", key),
			zap.Error(err),
		)
		return emiResponse{}, false
	}
	if resp.Schedule == nil {
		resp.Schedule = []scheduleRow{}
	}
	return resp, true
}

func (h *handler) storePlan(ctx context.Context, key string, resp emiResponse) {
	if h.cache == nil || !resp.finite() {
		return
	}

	data, err := msgpack.Marshal(resp)
	if err == nil {
		err = h.cache.Set(ctx, key, data, h.cacheTTL)
	}
	if err != nil {
		h.logger.Warn("cache store failed",
			zap.String("op", "server.storePlan"),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func isMsgpack(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == contentTypeMsgpack || mediaType == "application/x-msgpack"
}

func wantsMsgpack(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		if isMsgpack(strings.TrimSpace(part)) {
			return true
		}
	}
	return false
}

func (h *handler) decodeLoanForm(w http.ResponseWriter, r *http.Request) (calculator.LoanForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var form calculator.LoanForm
	if isMsgpack(r.Header.Get("Content-Type")) {
		err := msgpack.NewDecoder(r.Body).Decode(&form)
		return form, err
	}

	var req emiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return form, err
	}
	form = calculator.LoanForm{
		LoanAmount:   string(req.LoanAmount),
		InterestRate: string(req.InterestRate),
		LoanTenure:   string(req.LoanTenure),
		TenureType:   string(req.TenureType),
	}
	return form, nil
}

func (h *handler) decodeConverterForm(w http.ResponseWriter, r *http.Request) (calculator.ConverterForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var form calculator.ConverterForm
	if isMsgpack(r.Header.Get("Content-Type")) {
		err := msgpack.NewDecoder(r.Body).Decode(&form)
		return form, err
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return form, err
	}
	form = calculator.ConverterForm{
		Family: string(req.Family),
		Value:  string(req.Value),
		From:   string(req.From),
		To:     string(req.To),
	}
	return form, nil
}

func (h *handler) respondDecodeError(w http.ResponseWriter, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeResponse(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	if !wantsMsgpack(r) {
		h.writeJSON(w, status, payload)
		return
	}

	data, err := msgpack.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode msgpack response", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to encode response"})
		return
	}
	w.Header().Set("Content-Type", contentTypeMsgpack)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write msgpack response", zap.Error(err))
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
		status = http.StatusInternalServerError
		data = []byte(`{"error":"failed to encode response"}`)
	}
	data = append(data, '\n')

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Debug("request served",
			zap.String("op", "server.request"),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
