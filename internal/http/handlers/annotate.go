package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annolab/tenselab-backend/internal/corpus"
	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/http/response"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
	"github.com/annolab/tenselab-backend/internal/requestdata"
	"github.com/annolab/tenselab-backend/internal/services"
	"github.com/annolab/tenselab-backend/internal/session"
)

type AnnotateHandler struct {
	log               *logger.Logger
	sessions          *session.Manager
	worklistService   services.WorklistService
	annotationService services.AnnotationService
}

func NewAnnotateHandler(
	baseLog *logger.Logger,
	sessions *session.Manager,
	worklistService services.WorklistService,
	annotationService services.AnnotationService,
) *AnnotateHandler {
	handlerLog := baseLog.With("handler", "AnnotateHandler")
	return &AnnotateHandler{
		log:               handlerLog,
		sessions:          sessions,
		worklistService:   worklistService,
		annotationService: annotationService,
	}
}

// GetOptions returns the CEFR bands and the grouped tense taxonomy the
// annotation form is built from. Category names are presentation labels;
// only the contained labels are submittable.
func (h *AnnotateHandler) GetOptions(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"cefr_levels":      types.CEFRLevels(),
		"tense_categories": types.TenseCategories(),
	})
}

func (h *AnnotateHandler) LoadWorkList(c *gin.Context) {
	var req struct {
		CEFRLevel  string `json:"cefr_level"`
		SampleSize int    `json:"sample_size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	level, err := types.ParseCEFRLevel(req.CEFRLevel)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_level", err)
		return
	}
	if req.SampleSize < 1 {
		response.RespondError(c, http.StatusBadRequest, "invalid_sample_size", fmt.Errorf("sample_size must be at least 1"))
		return
	}

	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	progress, err := h.worklistService.LoadWorkList(c.Request.Context(), sess, level, req.SampleSize)
	if err != nil {
		switch {
		case errors.Is(err, corpus.ErrEmptyLevel):
			response.RespondError(c, http.StatusNotFound, "empty_level", err)
		case errors.Is(err, session.ErrEmptyWorkList):
			response.RespondError(c, http.StatusUnprocessableEntity, "empty_worklist", err)
		default:
			response.RespondError(c, http.StatusBadGateway, "corpus_load_failed", err)
		}
		return
	}

	unit, err := sess.Current()
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "session_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"unit": unit, "progress": progress})
}

func (h *AnnotateHandler) Current(c *gin.Context) {
	h.respondWithUnit(c, func(sess *session.Session) (types.AnnotationUnit, error) {
		return sess.Current()
	})
}

func (h *AnnotateHandler) Next(c *gin.Context) {
	h.respondWithUnit(c, func(sess *session.Session) (types.AnnotationUnit, error) {
		return sess.Next()
	})
}

func (h *AnnotateHandler) Previous(c *gin.Context) {
	h.respondWithUnit(c, func(sess *session.Session) (types.AnnotationUnit, error) {
		return sess.Previous()
	})
}

func (h *AnnotateHandler) Submit(c *gin.Context) {
	var req struct {
		TargetTense string `json:"target_tense"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	sess := h.currentSession(c)
	if sess == nil {
		return
	}
	unit, err := sess.Current()
	if err != nil {
		response.RespondError(c, http.StatusConflict, "worklist_not_loaded", err)
		return
	}

	rd := requestdata.GetRequestData(c.Request.Context())
	record, err := h.annotationService.Submit(c.Request.Context(), unit, req.TargetTense, req.Notes, rd.UserID)
	if err != nil {
		if errors.Is(err, types.ErrInvalidTense) {
			response.RespondError(c, http.StatusBadRequest, "invalid_tense", err)
			return
		}
		response.RespondError(c, http.StatusBadGateway, "store_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true, "annotation_id": record.ID})
}

func (h *AnnotateHandler) respondWithUnit(c *gin.Context, move func(*session.Session) (types.AnnotationUnit, error)) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	unit, err := move(sess)
	if err != nil {
		response.RespondError(c, http.StatusConflict, "worklist_not_loaded", err)
		return
	}
	progress, err := sess.Progress()
	if err != nil {
		response.RespondError(c, http.StatusConflict, "worklist_not_loaded", err)
		return
	}
	response.RespondOK(c, gin.H{"unit": unit, "progress": progress})
}

// currentSession resolves the caller's session, re-establishing an empty
// one when the process restarted under a still valid token. Responds and
// returns nil when the caller identity is missing.
func (h *AnnotateHandler) currentSession(c *gin.Context) *session.Session {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing caller identity"))
		return nil
	}
	if sess, ok := h.sessions.Get(rd.UserID); ok {
		return sess
	}
	return h.sessions.Create(rd.UserID, rd.Role)
}
