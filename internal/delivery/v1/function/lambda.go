package function

import (
	"context"
	"encoding/base64"

	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/aws/aws-lambda-go/events"
)

// HandleAPIGatewayProxy адаптирует Handle к прокси-интеграции API Gateway.
// Все сбои выражаются кодом ответа, ошибка рантайму не возвращается.
func (h *ProductsHandler) HandleAPIGatewayProxy(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := ev.Body
	if ev.IsBase64Encoded && body != "" {
		raw, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			resp := h.fail(e.Wrap("decode base64 body", e.ErrInvalidBody))
			return toProxyResponse(resp), nil
		}
		body = string(raw)
	}

	resp := h.Handle(ctx, &Request{
		HTTPMethod:            ev.HTTPMethod,
		Body:                  body,
		QueryStringParameters: ev.QueryStringParameters,
	})

	return toProxyResponse(resp), nil
}

func toProxyResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}
