package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.categories.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := s.categories.Create(c.Request.Context(), currentUserID(c), req.Name, req.Color)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.categories.Delete(c.Request.Context(), currentUserID(c), categoryID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
