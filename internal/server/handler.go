package server

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axiomhq/huffman"
	"github.com/axiomhq/huffman/internal/compare"
)

type textReq struct {
	Text string `json:"text"`
}

type compressResp struct {
	Data          string `json:"data"`
	Padding       uint8  `json:"padding"`
	Symbols       int    `json:"symbols"`
	OriginalBytes int    `json:"originalBytes"`
	FrameBytes    int    `json:"frameBytes"`
}

type decompressReq struct {
	Data string `json:"data" binding:"required"`
}

var errEmptyText = errors.New("empty text")

func (s *Server) compress(c *gin.Context) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		s.fail(c, http.StatusBadRequest, errEmptyText)
		return
	}
	res, err := huffman.Encode(req.Text)
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	frame, err := res.Frame()
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	s.compressed.Add(1)
	log.Debugf("compress: %d bytes -> %d byte frame, %d symbols", len(req.Text), len(frame), len(res.Codes))
	c.JSON(http.StatusOK, compressResp{
		Data:          base64.StdEncoding.EncodeToString(frame),
		Padding:       res.Padding,
		Symbols:       len(res.Codes),
		OriginalBytes: len(req.Text),
		FrameBytes:    len(frame),
	})
}

func (s *Server) decompress(c *gin.Context) {
	var req decompressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	frame, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	text, err := huffman.Decompress(frame)
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	s.decompressed.Add(1)
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (s *Server) compare(c *gin.Context) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	rep, err := compare.RunCodecs(c.Request.Context(), []byte(req.Text), s.opts.Codecs...)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// fail writes {"error": ...}. A body cut short by the size limit is always
// reported as 413 whatever status the caller picked.
func (s *Server) fail(c *gin.Context, status int, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	s.failures.Add(1)
	if status >= http.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	} else {
		log.Infof("%s %s: %d %v", c.Request.Method, c.Request.URL.Path, status, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, huffman.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, huffman.ErrCorruptData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
