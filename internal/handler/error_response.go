package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"RutasVerdes-App/internal/domain/model"
)

// respondError はドメインエラーをHTTPステータスに変換して返す
func respondError(c *gin.Context, log *zap.Logger, message string, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": validationErr.Error(),
		})
	case errors.Is(err, model.ErrRouteNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "ルートが見つかりません",
			"details": err.Error(),
		})
	default:
		log.Error(message, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   message,
			"details": err.Error(),
		})
	}
}

// respondBindError はリクエストボディの形式エラーを返す
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "リクエストの形式が正しくありません",
		"details": err.Error(),
	})
}
