package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"local-llm-chat/dto"
	"local-llm-chat/services"
)

// SaveConversationHandler godoc
// @Summary      Save a conversation
// @Description  Persists the supplied message history as a new immutable transcript
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SaveConversationRequestDTO  true  "conversation to save"
// @Success      200   {object}  dto.SaveConversationResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /save_conversation [post]
func SaveConversationHandler(svc *services.ConversationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SaveConversationRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		saved, convErr := svc.Save(c.Request.Context(), dto.ToModelMessages(req.Messages))
		if convErr != nil {
			c.JSON(convErr.StatusCode, dto.ErrorResponseDTO{Error: convErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.SaveConversationResponseDTO{
			Success:  true,
			Filename: saved.ID,
			Path:     filepath.Join(svc.Dir(), saved.ID),
		})
	}
}

// ListConversationsHandler godoc
// @Summary      List saved conversations
// @Description  Lists transcript metadata, most recent first
// @Tags         conversations
// @Produce      json
// @Success      200  {object}  dto.ListConversationsResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /conversations [get]
func ListConversationsHandler(svc *services.ConversationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summaries, convErr := svc.List(c.Request.Context())
		if convErr != nil {
			c.JSON(convErr.StatusCode, dto.ErrorResponseDTO{Error: convErr.ErrorCode})
			return
		}

		out := dto.ListConversationsResponseDTO{
			Conversations: make([]dto.ConversationSummaryDTO, 0, len(summaries)),
		}
		for _, s := range summaries {
			out.Conversations = append(out.Conversations, dto.ConversationSummaryDTO{
				Filename:     s.ID,
				Timestamp:    s.CreatedAt,
				MessageCount: s.MessageCount,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetConversationHandler godoc
// @Summary      Load one saved conversation
// @Tags         conversations
// @Produce      json
// @Param        filename  path      string  true  "transcript file name"
// @Success      200       {object}  dto.ConversationDTO
// @Failure      404       {object}  dto.ErrorResponseDTO
// @Router       /conversations/{filename} [get]
func GetConversationHandler(svc *services.ConversationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved, convErr := svc.Get(c.Request.Context(), c.Param("filename"))
		if convErr != nil {
			c.JSON(convErr.StatusCode, dto.ErrorResponseDTO{Error: convErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.ConversationDTO{
			Filename:  saved.ID,
			Timestamp: saved.CreatedAt,
			Messages:  dto.FromModelMessages(saved.Messages),
		})
	}
}
