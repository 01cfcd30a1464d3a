package handler

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/pkg/response"
	"Bonjour/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LookbookHandler struct {
	lookbookSvc service.LookbookService
}

func NewLookbookHandler(lookbookSvc service.LookbookService) *LookbookHandler {
	return &LookbookHandler{lookbookSvc: lookbookSvc}
}

// bindLookbookForm 解析 multipart 表单：文本字段 + 图片文件域
func bindLookbookForm(c *gin.Context) (*dto.LookbookBaseDTO, *service.LookbookFilesDTO, error) {
	var baseDTO dto.LookbookBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		return nil, nil, err
	}

	files := &service.LookbookFilesDTO{}
	if f, err := c.FormFile("image"); err == nil {
		files.Image = f
	}
	if f, err := c.FormFile("banner"); err == nil {
		files.Banner = f
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files.Gallery = form.File["gallery"]
	}
	return &baseDTO, files, nil
}

func (s *LookbookHandler) CreateLookbook(c *gin.Context) {
	baseDTO, files, err := bindLookbookForm(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	lookbook, err := s.lookbookSvc.CreateLookbook(c.Request.Context(), brandID, baseDTO, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, lookbook)
}

func (s *LookbookHandler) GetLookbook(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("lookbook_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	brandID := c.GetUint64("brand_id")
	lookbook, err := s.lookbookSvc.GetLookbook(c.Request.Context(), brandID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, lookbook)
}

func (s *LookbookHandler) ListLookbooks(c *gin.Context) {
	brandID := c.GetUint64("brand_id")
	lookbooks, err := s.lookbookSvc.ListLookbooks(c.Request.Context(), brandID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, lookbooks)
}

func (s *LookbookHandler) UpdateLookbook(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("lookbook_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	baseDTO, files, err := bindLookbookForm(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	lookbook, err := s.lookbookSvc.UpdateLookbook(c.Request.Context(), brandID, id, baseDTO, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, lookbook)
}

func (s *LookbookHandler) DeleteLookbook(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("lookbook_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	brandID := c.GetUint64("brand_id")
	if err = s.lookbookSvc.DeleteLookbook(c.Request.Context(), brandID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
