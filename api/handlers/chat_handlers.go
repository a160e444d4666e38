package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"local-llm-chat/dto"
	"local-llm-chat/services"
)

// ChatHandler godoc
// @Summary      Run one chat turn
// @Description  Forwards the full conversation history to the configured local model endpoint and returns the assistant reply
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatRequestDTO  true  "chat turn"
// @Success      200   {object}  dto.ChatResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Failure      504   {object}  dto.ErrorResponseDTO
// @Router       /chat [post]
func ChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ChatRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		reply, chatErr := svc.Chat(c.Request.Context(), services.ChatInput{
			Messages:     dto.ToModelMessages(req.Messages),
			Endpoint:     req.Endpoint,
			Model:        req.Model,
			Temperature:  req.Temperature,
			SystemPrompt: req.SystemPrompt,
		})
		if chatErr != nil {
			c.JSON(chatErr.StatusCode, dto.ErrorResponseDTO{Error: chatErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.ChatResponseDTO{Response: reply.Content})
	}
}
