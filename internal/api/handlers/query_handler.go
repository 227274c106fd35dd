package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/apk-analysis/dexkit-go/internal/bridge"
	"github.com/apk-analysis/dexkit-go/internal/query"
	"github.com/apk-analysis/dexkit-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ResultStatusHeader 携带结果状态：found / not_found
const ResultStatusHeader = "X-Result-Status"

const octetStream = "application/octet-stream"

var payloadOps = map[string]func(*bridge.Handle, []byte) (bridge.Result, error){
	"find-class":                 (*bridge.Handle).FindClass,
	"find-method":                (*bridge.Handle).FindMethod,
	"find-field":                 (*bridge.Handle).FindField,
	"batch-class-using-strings":  (*bridge.Handle).BatchFindClassUsingStrings,
	"batch-method-using-strings": (*bridge.Handle).BatchFindMethodUsingStrings,
}

var descriptorOps = map[string]func(*bridge.Handle, string) (bridge.Result, error){
	"class-data":  (*bridge.Handle).ClassData,
	"method-data": (*bridge.Handle).MethodData,
	"field-data":  (*bridge.Handle).FieldData,
}

var idsOps = map[string]func(*bridge.Handle, []int64) (bridge.Result, error){
	"classes": (*bridge.Handle).ClassesByIDs,
	"methods": (*bridge.Handle).MethodsByIDs,
	"fields":  (*bridge.Handle).FieldsByIDs,
}

var idOps = map[string]func(*bridge.Handle, int64) (bridge.Result, error){
	"class-annotations":     (*bridge.Handle).ClassAnnotations,
	"field-annotations":     (*bridge.Handle).FieldAnnotations,
	"method-annotations":    (*bridge.Handle).MethodAnnotations,
	"parameter-annotations": (*bridge.Handle).ParameterAnnotations,
	"field-readers":         (*bridge.Handle).FieldReaders,
	"field-writers":         (*bridge.Handle).FieldWriters,
	"callers":               (*bridge.Handle).CallerMethods,
	"invokes":               (*bridge.Handle).InvokeMethods,
	"using-fields":          (*bridge.Handle).MethodUsingFields,
	"op-codes":              (*bridge.Handle).MethodOpCodes,
}

// QueryHandler 查询处理器。结果以 octet-stream 原样返回，无结果时 204
type QueryHandler struct {
	sessions   service.SessionService
	logger     *logrus.Logger
	maxPayload int64
}

func NewQueryHandler(sessions service.SessionService, logger *logrus.Logger, maxPayload int64) *QueryHandler {
	if maxPayload <= 0 {
		maxPayload = 16 << 20
	}
	return &QueryHandler{
		sessions:   sessions,
		logger:     logger,
		maxPayload: maxPayload,
	}
}

type lookupRequest struct {
	Descriptor string  `json:"descriptor"`
	IDs        []int64 `json:"ids"`
	ID         *int64  `json:"id"`
}

// writeResult 写出结果并释放缓冲区
func (h *QueryHandler) writeResult(c *gin.Context, res bridge.Result, err error) {
	defer res.Release()
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.Header(ResultStatusHeader, res.Status().String())
	if !res.Found() {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, octetStream, res.Bytes())
}

func (h *QueryHandler) queryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, query.ErrMalformedQuery), errors.Is(err, bridge.ErrInvalidDescriptor):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bridge.ErrOutOfMemory):
		c.Header(ResultStatusHeader, bridge.StatusOutOfMemory.String())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		sessionError(c, err)
	}
}

func (h *QueryHandler) session(c *gin.Context) (*service.Session, bool) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sessionError(c, err)
		return nil, false
	}
	return sess, true
}

// Query 执行结构化查询，请求体为编码后的查询载荷
// POST /api/sessions/:id/query/:kind
func (h *QueryHandler) Query(c *gin.Context) {
	op, ok := payloadOps[c.Param("kind")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown query kind " + c.Param("kind")})
		return
	}
	sess, ok := h.session(c)
	if !ok {
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPayload))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}

	var res bridge.Result
	err = sess.Query(func(hd *bridge.Handle) error {
		var qerr error
		res, qerr = op(hd, payload)
		return qerr
	})
	h.writeResult(c, res, err)
}

// Lookup 按描述符或 id 查找
// POST /api/sessions/:id/lookup/:kind
func (h *QueryHandler) Lookup(c *gin.Context) {
	kind := c.Param("kind")
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var run func(*bridge.Handle) (bridge.Result, error)
	if op, ok := descriptorOps[kind]; ok {
		run = func(hd *bridge.Handle) (bridge.Result, error) { return op(hd, req.Descriptor) }
	} else if op, ok := idsOps[kind]; ok {
		run = func(hd *bridge.Handle) (bridge.Result, error) { return op(hd, req.IDs) }
	} else if op, ok := idOps[kind]; ok {
		if req.ID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}
		run = func(hd *bridge.Handle) (bridge.Result, error) { return op(hd, *req.ID) }
	} else {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown lookup kind " + kind})
		return
	}

	sess, ok := h.session(c)
	if !ok {
		return
	}
	var res bridge.Result
	err := sess.Query(func(hd *bridge.Handle) error {
		var qerr error
		res, qerr = run(hd)
		return qerr
	})
	h.writeResult(c, res, err)
}

func methodID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("mid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid method id"})
		return 0, false
	}
	return id, true
}

// writeStrings 缺失的槽位输出为 null
func (h *QueryHandler) writeStrings(c *gin.Context, run func(*bridge.Handle, int64) (bridge.StringsResult, error)) {
	id, ok := methodID(c)
	if !ok {
		return
	}
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var res bridge.StringsResult
	err := sess.Query(func(hd *bridge.Handle) error {
		var qerr error
		res, qerr = run(hd, id)
		return qerr
	})
	if err != nil {
		h.queryError(c, err)
		return
	}
	if res.Absent() {
		c.Header(ResultStatusHeader, bridge.StatusNotFound.String())
		c.Status(http.StatusNoContent)
		return
	}
	c.Header(ResultStatusHeader, bridge.StatusFound.String())
	c.JSON(http.StatusOK, gin.H{
		"count":  res.Len(),
		"values": res.Values(),
	})
}

// ParameterNames GET /api/sessions/:id/methods/:mid/parameter-names
func (h *QueryHandler) ParameterNames(c *gin.Context) {
	h.writeStrings(c, (*bridge.Handle).ParameterNames)
}

// UsingStrings GET /api/sessions/:id/methods/:mid/using-strings
func (h *QueryHandler) UsingStrings(c *gin.Context) {
	h.writeStrings(c, (*bridge.Handle).MethodUsingStrings)
}

// OpCodes GET /api/sessions/:id/methods/:mid/op-codes
func (h *QueryHandler) OpCodes(c *gin.Context) {
	id, ok := methodID(c)
	if !ok {
		return
	}
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var res bridge.Result
	err := sess.Query(func(hd *bridge.Handle) error {
		var qerr error
		res, qerr = hd.MethodOpCodes(id)
		return qerr
	})
	h.writeResult(c, res, err)
}
