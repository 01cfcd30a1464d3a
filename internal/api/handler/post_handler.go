package handler

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/pkg/response"
	"Bonjour/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var postDTO dto.PostBaseDTO
	if err := c.ShouldBind(&postDTO); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	post, err := s.postSvc.CreatePost(c.Request.Context(), brandID, &postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	brandID := c.GetUint64("brand_id")
	post, err := s.postSvc.GetPost(c.Request.Context(), brandID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	var listDTO dto.PostListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	posts, err := s.postSvc.ListPosts(c.Request.Context(), brandID, &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) ListTags(c *gin.Context) {
	brandID := c.GetUint64("brand_id")
	tags, err := s.postSvc.ListTags(c.Request.Context(), brandID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var postDTO dto.PostBaseDTO
	if err = c.ShouldBind(&postDTO); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	post, err := s.postSvc.UpdatePost(c.Request.Context(), brandID, id, &postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	brandID := c.GetUint64("brand_id")
	if err = s.postSvc.DeletePost(c.Request.Context(), brandID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
