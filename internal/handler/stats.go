package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/stats"
)

// ModifyStatRequest applies a signed delta to one stat
type ModifyStatRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Stat     string `json:"stat" validate:"required,stat"`
	Delta    int    `json:"delta" validate:"ne=0"`
}

// PotionRequest identifies the user drinking a potion
type PotionRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleGetStats handles GET /stats
func HandleGetStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}

		userStats, err := svc.GetStats(r.Context(), userID, username)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: stats.FormatStats(username, userStats),
			Data:    userStats,
		})
	}
}

// HandleModifyStat handles POST /stats/modify
func HandleModifyStat(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModifyStatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Modify stat"); err != nil {
			return
		}

		column := domain.StatColumn(strings.ToLower(req.Stat))
		userStats, err := svc.ModifyStat(httpContext(r), req.UserID, req.Username, column, req.Delta)
		if err != nil {
			logger.FromContext(r.Context()).Error(fmt.Sprintf(LogMsgRequestFailed, "Modify stat"),
				"user_id", req.UserID, "stat", req.Stat, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: stats.FormatStats(req.Username, userStats),
			Data:    userStats,
		})
	}
}

// HandleDrinkPotion handles POST /stats/potion
func HandleDrinkPotion(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PotionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Potion"); err != nil {
			return
		}

		result, err := svc.DrinkPotion(httpContext(r), req.UserID, req.Username)
		if err != nil {
			logger.FromContext(r.Context()).Error(fmt.Sprintf(LogMsgRequestFailed, "Potion"),
				"user_id", req.UserID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: stats.FormatPotion(req.Username, result),
			Data:    result,
		})
	}
}

// HandleLeaderboard handles GET /stats/leaderboard
func HandleLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leaders, err := svc.Leaderboard(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: stats.FormatLeaderboard(leaders),
			Data:    leaders,
		})
	}
}
