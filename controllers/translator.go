package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abhishek83gupta/Lingua/log"
	"github.com/Abhishek83gupta/Lingua/middlewares"
	"github.com/Abhishek83gupta/Lingua/models"
	"github.com/Abhishek83gupta/Lingua/stores"
	"github.com/Abhishek83gupta/Lingua/translator"
)

const (
	maxInflightTranslations = 100
	semaphoreWait           = 300 * time.Millisecond
	historyWriteTimeout     = 2 * time.Second
)

// TranslationRequest is the translate endpoint's body.
type TranslationRequest struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang" binding:"required"`
	AutoDetect bool   `json:"auto_detect"`
}

// TranslationResponse is the translate endpoint's reply. DetectedLang is
// null unless language detection actually ran.
type TranslationResponse struct {
	TranslatedText string  `json:"translated_text"`
	DetectedLang   *string `json:"detected_language"`
}

// FavoriteRequest is the favorite toggle body. Pointer so that an absent
// field is distinguishable from false.
type FavoriteRequest struct {
	IsFavorite *bool `json:"is_favorite" binding:"required"`
}

// TranslateController serves translation, history listing and favorite
// toggling. Dependencies are injected; nothing here is process-global.
type TranslateController struct {
	ai    translator.LanguageService
	store *stores.HistoryStore
	sem   chan struct{}
}

func NewTranslateController(ai translator.LanguageService, store *stores.HistoryStore) *TranslateController {
	return &TranslateController{
		ai:    ai,
		store: store,
		sem:   make(chan struct{}, maxInflightTranslations),
	}
}

// TranslateText godoc
// @Summary     Translate text
// @Description Translates text between languages, optionally auto-detecting the source language first. The result is saved to history when the caller is logged in.
// @Tags        Translation
// @Accept      json
// @Produce     json
// @Param       request  body      TranslationRequest   true  "translation request"
// @Success     200      {object}  TranslationResponse  "translation result"
// @Failure     400      {object}  map[string]string    "missing required fields"
// @Failure     429      {object}  map[string]string    "server busy"
// @Failure     500      {object}  map[string]string    "language service failure"
// @Router      /api/translate [post]
func (tc *TranslateController) TranslateText(c *gin.Context) {
	// Cap concurrent outbound calls; waiting callers give up after 300ms.
	select {
	case tc.sem <- struct{}{}:
		defer func() { <-tc.sem }()
	case <-c.Request.Context().Done():
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "client canceled"})
		return
	case <-time.After(semaphoreWait):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "The server is busy, try later"})
		return
	}

	var req TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	req.SourceLang = strings.TrimSpace(req.SourceLang)
	req.TargetLang = strings.TrimSpace(req.TargetLang)
	if req.Text == "" || req.TargetLang == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	ctx := c.Request.Context()

	// Resolve the effective source language. An omitted source or the
	// "auto" sentinel forces detection; by the time Translate is called
	// the source is always a concrete tag.
	sourceLang := req.SourceLang
	autoMode := req.AutoDetect || sourceLang == "" || strings.EqualFold(sourceLang, translator.AutoLang)

	var detected *string
	if autoMode {
		lang, err := tc.ai.DetectLanguage(ctx, req.Text)
		if err != nil {
			log.L().Error("language detection failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Language detection failed"})
			return
		}
		sourceLang = lang
		detected = &lang
	}

	translated, err := tc.ai.Translate(ctx, req.Text, sourceLang, req.TargetLang)
	if err != nil {
		log.L().Error("translation failed",
			zap.String("source_lang", sourceLang),
			zap.String("target_lang", req.TargetLang),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation failed"})
		return
	}

	// Best-effort history write for logged-in users. A failure here is an
	// operator problem, not the caller's: the translation still goes out.
	if p, ok := middlewares.CurrentPrincipal(c); ok {
		dbCtx, cancel := context.WithTimeout(c.Request.Context(), historyWriteTimeout)
		defer cancel()
		entry := &models.TranslationHistory{
			UserID:         p.ID,
			SourceText:     req.Text,
			TranslatedText: translated,
			SourceLang:     sourceLang,
			TargetLang:     req.TargetLang,
		}
		if err := tc.store.Create(dbCtx, entry); err != nil {
			log.L().Error("save translation history failed",
				zap.Uint("user_id", p.ID),
				zap.Error(err))
		} else {
			log.L().Info("translation history stored",
				zap.Uint("user_id", p.ID),
				zap.String("source_lang", sourceLang),
				zap.String("target_lang", req.TargetLang))
		}
	}

	c.JSON(http.StatusOK, TranslationResponse{
		TranslatedText: translated,
		DetectedLang:   detected,
	})
}

// GetTranslationHistory godoc
// @Summary     List translation history
// @Description Returns the logged-in user's translation history, newest first.
// @Tags        Translation
// @Security    Bearer
// @Produce     json
// @Param       page       query     int  false  "page number, default 1"
// @Param       page_size  query     int  false  "records per page, default 10, max 100"
// @Success     200  {object}  map[string]interface{}  "history entries plus paging info"
// @Failure     401  {object}  map[string]string       "unauthorized"
// @Failure     500  {object}  map[string]string       "query failed"
// @Router      /api/translate/history [get]
func (tc *TranslateController) GetTranslationHistory(c *gin.Context) {
	p, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	total, err := tc.store.CountByOwner(c.Request.Context(), p.ID)
	if err != nil {
		log.L().Error("count translation histories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count translation history"})
		return
	}
	histories, err := tc.store.ListByOwner(c.Request.Context(), p.ID, offset, pageSize)
	if err != nil {
		log.L().Error("query translation histories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query translation history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"histories": histories,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// ToggleFavorite godoc
// @Summary     Toggle favorite on a history entry
// @Description Sets the favorite flag on one of the logged-in user's history entries.
// @Tags        Translation
// @Security    Bearer
// @Accept      json
// @Produce     json
// @Param       id       path      int              true  "history entry ID"
// @Param       request  body      FavoriteRequest  true  "favorite flag"
// @Success     200  {object}  models.TranslationHistory  "updated entry"
// @Failure     400  {object}  map[string]string          "invalid id or body"
// @Failure     401  {object}  map[string]string          "unauthorized"
// @Failure     404  {object}  map[string]string          "entry not found"
// @Router      /api/translate/history/{id}/favorite [patch]
func (tc *TranslateController) ToggleFavorite(c *gin.Context) {
	p, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history entry ID"})
		return
	}
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := tc.store.SetFavorite(c.Request.Context(), uint(id), p.ID, *req.IsFavorite)
	if err != nil {
		// A foreign-owned entry answers exactly like a missing one.
		if errors.Is(err, stores.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Translation history entry not found"})
			return
		}
		log.L().Error("update favorite failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetSupportedLanguages godoc
// @Summary     List supported languages
// @Description Returns the language codes offered by the translation UI.
// @Tags        Translation
// @Produce     json
// @Success     200  {object}  map[string]string  "language code to name"
// @Router      /api/translate/languages [get]
func (tc *TranslateController) GetSupportedLanguages(c *gin.Context) {
	languages := gin.H{
		"auto":  "Auto Detect",
		"en":    "English",
		"zh":    "Chinese (Simplified)",
		"zh-TW": "Chinese (Traditional)",
		"ja":    "Japanese",
		"ko":    "Korean",
		"es":    "Spanish",
		"fr":    "French",
		"de":    "German",
		"ru":    "Russian",
		"ar":    "Arabic",
		"pt":    "Portuguese",
		"it":    "Italian",
		"nl":    "Dutch",
		"sv":    "Swedish",
		"da":    "Danish",
		"no":    "Norwegian",
		"fi":    "Finnish",
		"pl":    "Polish",
		"tr":    "Turkish",
		"hi":    "Hindi",
		"th":    "Thai",
		"vi":    "Vietnamese",
	}
	c.JSON(http.StatusOK, languages)
}
