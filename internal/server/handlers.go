package server

import (
	"context"
	"io"
	"net/http"

	"github.com/joseph-ayodele/contracts-analyzer/internal/compliance"
	"github.com/joseph-ayodele/contracts-analyzer/internal/export"
	"github.com/joseph-ayodele/contracts-analyzer/internal/recommend"
)

const maxUploadBytes = 64 << 20

type contentRequest struct {
	Content string `json:"content"`
}

type detectRequest struct {
	Content         string                      `json:"content"`
	StandardClauses []compliance.StandardClause `json:"standardClauses"`
}

type textResponse struct {
	Text string `json:"text"`
}

type itemListResponse struct {
	ItemList any `json:"item_list"`
}

// handleDigitize accepts a multipart PDF upload and returns the reassembled
// text artifact.
func (s *Server) handleDigitize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form: " + err.Error()})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file field"})
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "application/pdf" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file type must be application/pdf"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "read upload: " + err.Error()})
		return
	}

	text, err := s.digitizer.Digitize(r.Context(), data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, textResponse{Text: text})
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.detector.Detect(r.Context(), req.Content, req.StandardClauses)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.matcher.Recommend(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req export.Request
	if !s.decode(w, r, &req) {
		return
	}
	workbook, err := export.BuildWorkbook(req)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="contract.xlsx"`)
	if _, err := w.Write(workbook); err != nil {
		s.log.Warn("server.write_workbook_error", "error", err)
	}
}

// The extraction endpoints share one shape: {content} in, record or item
// list out. Independent tasks stay isolated; a failure here never affects
// another endpoint.

func (s *Server) handleBasicInfo(w http.ResponseWriter, r *http.Request) {
	s.extractOne(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.BasicInfo(ctx, content)
	})
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	s.extractList(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.Devices(ctx, content)
	})
}

func (s *Server) handleTrainingSupport(w http.ResponseWriter, r *http.Request) {
	s.extractList(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.TrainingSupport(ctx, content)
	})
}

func (s *Server) handleAfterSales(w http.ResponseWriter, r *http.Request) {
	s.extractOne(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.AfterSalesSupport(ctx, content)
	})
}

func (s *Server) handleKeySpareParts(w http.ResponseWriter, r *http.Request) {
	s.extractList(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.KeySpareParts(ctx, content)
	})
}

func (s *Server) handleOnsiteSLA(w http.ResponseWriter, r *http.Request) {
	s.extractList(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.OnsiteSLA(ctx, content)
	})
}

func (s *Server) handleYearlyMaintenance(w http.ResponseWriter, r *http.Request) {
	s.extractList(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.YearlyMaintenance(ctx, content)
	})
}

func (s *Server) handleRemoteMaintenance(w http.ResponseWriter, r *http.Request) {
	s.extractList(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.RemoteMaintenance(ctx, content)
	})
}

func (s *Server) handleComplianceInfo(w http.ResponseWriter, r *http.Request) {
	s.extractOne(w, r, func(ctx context.Context, content string) (any, error) {
		return s.extractor.ContractAndCompliance(ctx, content)
	})
}

func (s *Server) extractOne(w http.ResponseWriter, r *http.Request, run func(context.Context, string) (any, error)) {
	var req contentRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := run(r.Context(), req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) extractList(w http.ResponseWriter, r *http.Request, run func(context.Context, string) (any, error)) {
	var req contentRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := run(r.Context(), req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, itemListResponse{ItemList: out})
}
