package api

import (
	"net/http"

	resdto "tourbook/internal/handler/dto/response"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CredentialHandler struct {
	credentialQueries queries.CredentialQueries
}

func NewCredentialHandler(credentialQueries queries.CredentialQueries) *CredentialHandler {
	return &CredentialHandler{
		credentialQueries: credentialQueries,
	}
}

// @Summary Retrieve a decrypted credential
// @Description Returns the plaintext secret for a user/kind pair; empty when unset
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param kind path string true "Credential kind"
// @Success 200 {object} resdto.CredentialResponse
// @Router /admin/users/{id}/credentials/{kind} [get]
func (h *CredentialHandler) Get(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	kind := c.Param("kind")

	value, err := h.credentialQueries.GetDecrypted(c.Request.Context(), userID, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.CredentialResponse{
		Kind:  kind,
		Value: value,
	})
}
