package function

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/products-backend/internal/usecase"
	"github.com/DRSN-tech/products-backend/pkg/logger"
)

// ProductsHandler обрабатывает одно событие над ресурсом products и всегда возвращает ответ.
type ProductsHandler struct {
	productUC usecase.ProductUC
	logger    logger.Logger
}

func NewProductsHandler(productUC usecase.ProductUC, logger logger.Logger) *ProductsHandler {
	return &ProductsHandler{productUC: productUC, logger: logger}
}

// Handle
//
//	@Summary		CRUD над товарами
//	@Description	OPTIONS отвечает на preflight, GET возвращает список (новые первыми),
//	@Description	POST создаёт товар, PUT полностью перезаписывает товар по id из тела,
//	@Description	DELETE удаляет товар по id из строки запроса.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		query		int				false	"ID товара (DELETE)"
//	@Param			product	body		ProductInput	false	"Товар (POST, PUT)"
//	@Success		200		{array}		ProductView
//	@Success		201		{object}	CreatedResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		405		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/products [get]
//	@Router			/products [post]
//	@Router			/products [put]
//	@Router			/products [delete]
func (h *ProductsHandler) Handle(ctx context.Context, req *Request) *Response {
	method := ParseMethod(req.HTTPMethod)

	var resp *Response
	switch method {
	case MethodOptions:
		return preflight()
	case MethodGet:
		resp = h.list(ctx)
	case MethodPost:
		resp = h.create(ctx, req)
	case MethodPut:
		resp = h.update(ctx, req)
	case MethodDelete:
		resp = h.delete(ctx, req)
	case MethodUnsupported:
		h.logger.Warnf("%d method %q is not allowed", http.StatusMethodNotAllowed, req.HTTPMethod)
		return MethodNotAllowed()
	}

	h.logger.Debugf("%s /products -> %d", method, resp.StatusCode)
	return resp
}

func (h *ProductsHandler) list(ctx context.Context) *Response {
	products, err := h.productUC.ListProducts(ctx)
	if err != nil {
		return h.fail(err)
	}

	return writeJSON(http.StatusOK, toProductViews(products))
}

func (h *ProductsHandler) create(ctx context.Context, req *Request) *Response {
	body, err := decodeProductBody(req.Body)
	if err != nil {
		return h.fail(err)
	}

	fields, err := body.fields()
	if err != nil {
		return h.fail(err)
	}

	res, err := h.productUC.CreateProduct(ctx, usecase.NewCreateProductReq(*fields))
	if err != nil {
		return h.fail(err)
	}

	return writeJSON(http.StatusCreated, CreatedResponse{
		ID:        strconv.FormatInt(res.ID, 10),
		CreatedAt: res.CreatedAt,
	})
}

func (h *ProductsHandler) update(ctx context.Context, req *Request) *Response {
	body, err := decodeProductBody(req.Body)
	if err != nil {
		return h.fail(err)
	}

	id, err := parseID(body.ID)
	if err != nil {
		return h.fail(err)
	}

	fields, err := body.fields()
	if err != nil {
		return h.fail(err)
	}

	if err := h.productUC.UpdateProduct(ctx, usecase.NewUpdateProductReq(id, *fields)); err != nil {
		return h.fail(err)
	}

	return writeJSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *ProductsHandler) delete(ctx context.Context, req *Request) *Response {
	id, err := queryID(req.QueryStringParameters)
	if err != nil {
		return h.fail(err)
	}

	if err := h.productUC.DeleteProduct(ctx, usecase.NewDeleteProductReq(id)); err != nil {
		return h.fail(err)
	}

	return writeJSON(http.StatusOK, SuccessResponse{Success: true})
}

// fail логирует ошибку (4xx как предупреждение, 5xx как ошибку) и строит ответ.
func (h *ProductsHandler) fail(err error) *Response {
	resp := writeError(err)
	if resp.StatusCode >= http.StatusInternalServerError {
		h.logger.Errorf(err, "%d request failed", resp.StatusCode)
	} else {
		h.logger.Warnf("%d %v", resp.StatusCode, err)
	}

	return resp
}
