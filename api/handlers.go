/*
handlers.go - HTTP API handlers for the unit conversion calculator

PURPOSE:
  Exposes the schedule engine via REST API. Handles HTTP request/response,
  JSON serialization, input validation, and history persistence.

ENDPOINTS:
  Calculations:
    POST   /api/calculations        Run a calculation (and record it)
    GET    /api/calculations        Calculation history, most recent first
    GET    /api/calculations/{id}   One stored calculation
    DELETE /api/calculations/{id}   Remove a stored calculation

  Reference data:
    GET    /api/presets             Pattern presets
    GET    /api/units               Conversion units with display labels

  Dev:
    POST   /api/reset               Clear history (dev only)

REQUEST FLOW:
  1. Parse and validate the request body (dates, bounds, vocabulary)
  2. Build engine inputs (span, patterns, unit)
  3. Compute via the schedule engine
  4. Persist a history record
  5. Serialize the result

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input (schedule.IsClientError)
  - 404: Record not found
  - 500: Storage failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - store/sqlite: history persistence
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/program"
	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/schedule"
	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/store/sqlite"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// CreateCalculation runs a calculation and records it in history.
func (h *Handler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	prog, err := program.ParseProgram(req.Program)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid program", err)
		return
	}

	span, err := parseSpan(req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date span", err)
		return
	}

	input, err := h.buildInput(prog, span, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid calculation input", err)
		return
	}

	result, err := schedule.Compute(*input)
	if err != nil {
		status := http.StatusInternalServerError
		if schedule.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Calculation failed", err)
		return
	}

	dto := toCalculationDTO(prog, span, result)
	dto.ID = fmt.Sprintf("calc-%d", time.Now().UnixNano())
	dto.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := h.saveHistory(r, &req, dto, span); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record calculation", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto)
}

// ListCalculations returns stored history, most recent first.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	records, err := h.Store.ListCalculations(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list calculations", err)
		return
	}

	items := make([]HistoryItemDTO, len(records))
	for i, rec := range records {
		items[i] = toHistoryItemDTO(rec)
	}
	writeJSON(w, http.StatusOK, items)
}

// GetCalculation returns one stored calculation, result included.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Store.GetCalculation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get calculation", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Calculation not found", nil)
		return
	}

	var dto CalculationDTO
	if err := json.Unmarshal([]byte(rec.ResultJSON), &dto); err != nil {
		writeError(w, http.StatusInternalServerError, "Stored result is unreadable", err)
		return
	}
	dto.ID = rec.ID
	dto.CreatedAt = rec.CreatedAt.Format(time.RFC3339)

	writeJSON(w, http.StatusOK, dto)
}

// DeleteCalculation removes a stored calculation.
func (h *Handler) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.Store.DeleteCalculation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete calculation", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Calculation not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// ResetHistory clears all stored calculations. Dev convenience.
func (h *Handler) ResetHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset history", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reset": true})
}

// =============================================================================
// REFERENCE DATA HANDLERS
// =============================================================================

// ListPresets returns the built-in pattern presets.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets := program.Presets()
	dtos := make([]PresetDTO, len(presets))
	for i, p := range presets {
		weekdays := make([]string, len(p.Weekdays))
		for j, wd := range p.Weekdays {
			weekdays[j] = wd.String()
		}
		dtos[i] = PresetDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Weekdays:    weekdays,
			HoursPerDay: p.HoursPerDay.InexactFloat64(),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListUnits returns the conversion units with display labels.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units := program.Units()
	dtos := make([]UnitDTO, len(units))
	for i, u := range units {
		dtos[i] = UnitDTO{ID: string(u), Label: program.UnitLabel(u)}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// INPUT ASSEMBLY AND VALIDATION
// =============================================================================

func parseSpan(start, end string) (schedule.DateSpan, error) {
	startDate, err := schedule.ParseDate(start)
	if err != nil {
		return schedule.DateSpan{}, fmt.Errorf("invalid start_date %q (use YYYY-MM-DD): %w", start, err)
	}
	endDate, err := schedule.ParseDate(end)
	if err != nil {
		return schedule.DateSpan{}, fmt.Errorf("invalid end_date %q (use YYYY-MM-DD): %w", end, err)
	}
	return schedule.NewDateSpan(startDate, endDate)
}

// buildInput translates the wire request into engine inputs, enforcing the
// wire-level bounds (hours 0-24 per day, 0-168 per week) before the engine
// sees anything.
func (h *Handler) buildInput(prog program.Program, span schedule.DateSpan, req *CalculateRequest) (*schedule.Input, error) {
	input := &schedule.Input{Mode: prog.Mode(), Span: span}

	switch prog {
	case program.PCA:
		if req.Pattern == nil {
			return nil, fmt.Errorf("program %q requires a pattern", prog)
		}
		pattern, err := toPattern(req.Pattern)
		if err != nil {
			return nil, err
		}
		unit, err := program.ParseUnit(req.Unit)
		if err != nil {
			return nil, err
		}
		input.Patterns = schedule.SinglePattern(pattern)
		input.Unit = unit

	case program.PCAAlternating:
		weekA, err := toOptionalPattern(req.WeekA)
		if err != nil {
			return nil, fmt.Errorf("week_a: %w", err)
		}
		weekB, err := toOptionalPattern(req.WeekB)
		if err != nil {
			return nil, fmt.Errorf("week_b: %w", err)
		}
		unit, err := program.ParseUnit(req.Unit)
		if err != nil {
			return nil, err
		}
		input.Patterns = schedule.AlternatingPatterns(weekA, weekB)
		input.Unit = unit

	case program.CDPAS:
		if req.HoursPerWeek == nil {
			return nil, fmt.Errorf("program %q requires hours_per_week", prog)
		}
		if *req.HoursPerWeek < 0 || *req.HoursPerWeek > 168 {
			return nil, fmt.Errorf("hours_per_week must be between 0 and 168, got %v", *req.HoursPerWeek)
		}
		input.HoursPerWeek = decimal.NewFromFloat(*req.HoursPerWeek)
	}

	return input, nil
}

func toOptionalPattern(dto *PatternRequest) (schedule.Pattern, error) {
	if dto == nil {
		return schedule.EmptyPattern(), nil
	}
	return toPattern(dto)
}

func toPattern(dto *PatternRequest) (schedule.Pattern, error) {
	selection := schedule.NewWeekdaySelection()
	for _, name := range dto.Weekdays {
		wd, err := program.ParseWeekday(name)
		if err != nil {
			return schedule.Pattern{}, err
		}
		selection[wd] = true
	}

	// Uniform shorthand: one rate for every selected weekday
	if dto.HoursPerDay != nil {
		if err := checkDailyHours(*dto.HoursPerDay); err != nil {
			return schedule.Pattern{}, err
		}
		return schedule.UniformPattern(selection, decimal.NewFromFloat(*dto.HoursPerDay)), nil
	}

	hours := make(schedule.HoursByWeekday, len(dto.Hours))
	for name, value := range dto.Hours {
		wd, err := program.ParseWeekday(name)
		if err != nil {
			return schedule.Pattern{}, err
		}
		if err := checkDailyHours(value); err != nil {
			return schedule.Pattern{}, fmt.Errorf("%s: %w", name, err)
		}
		hours[wd] = decimal.NewFromFloat(value)
	}
	return schedule.NewPattern(selection, hours), nil
}

func checkDailyHours(v float64) error {
	if v < 0 || v > 24 {
		return fmt.Errorf("hours per day must be between 0 and 24, got %v", v)
	}
	return nil
}

// =============================================================================
// HISTORY PERSISTENCE
// =============================================================================

func (h *Handler) saveHistory(r *http.Request, req *CalculateRequest, dto CalculationDTO, span schedule.DateSpan) error {
	requestJSON, err := json.Marshal(req)
	if err != nil {
		return err
	}
	resultJSON, err := json.Marshal(dto)
	if err != nil {
		return err
	}

	return h.Store.SaveCalculation(r.Context(), sqlite.CalculationRecord{
		ID:          dto.ID,
		Program:     dto.Program,
		StartDate:   span.Start.Time(),
		EndDate:     span.End.Time(),
		Unit:        dto.Unit,
		RequestJSON: string(requestJSON),
		ResultJSON:  string(resultJSON),
		FinalTotal:  decimal.NewFromFloat(dto.FinalTotal).String(),
	})
}

func toHistoryItemDTO(rec sqlite.CalculationRecord) HistoryItemDTO {
	total, err := decimal.NewFromString(rec.FinalTotal)
	if err != nil {
		total = decimal.Zero
	}
	return HistoryItemDTO{
		ID:         rec.ID,
		Program:    rec.Program,
		StartDate:  rec.StartDate.Format("2006-01-02"),
		EndDate:    rec.EndDate.Format("2006-01-02"),
		Unit:       rec.Unit,
		FinalTotal: total.InexactFloat64(),
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
