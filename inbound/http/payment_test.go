package http

import (
	"context"
	"encoding/json"
	"event-registration/common/constant"
	"event-registration/common/contract/mocks"
	"event-registration/model"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type PaymentHttpTestSuite struct {
	suite.Suite

	Validate  *validator.Validate
	Publisher *mocks.MockPublisher
}

func (s *PaymentHttpTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.Validate = validator.New()
	s.Publisher = mocks.NewMockPublisher(ctrl)

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func TestPaymentHttpTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHttpTestSuite))
}

func (s *PaymentHttpTestSuite) TestCallback() {
	tests := []struct {
		name           string
		reqBody        string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid json",
			reqBody:        `{invalid json`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request"}`,
		},
		{
			name:           "validation error - missing external_order_id",
			reqBody:        `{"outcome":"success"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"ExternalOrderID":"required"}}`,
		},
		{
			name:           "validation error - unknown outcome",
			reqBody:        `{"external_order_id":"ext-1","outcome":"refunded"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Outcome":"oneof"}}`,
		},
		{
			name:    "publish message error",
			reqBody: `{"external_order_id":"ext-1","outcome":"success","amount":150000}`,
			setupMock: func() {
				s.Publisher.EXPECT().Publish(
					gomock.Any(),
					constant.SubjectPaymentCallback,
					gomock.Any(),
					gomock.Any(),
				).Return(nil, fmt.Errorf("publish error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:    "success",
			reqBody: `{"external_order_id":"ext-1","outcome":"success","amount":150000}`,
			setupMock: func() {
				s.Publisher.EXPECT().Publish(
					gomock.Any(),
					constant.SubjectPaymentCallback,
					gomock.Any(),
					gomock.Any(),
				).DoAndReturn(func(_ context.Context, _ string, payload []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
					var msg model.PaymentCallbackEventMessage
					s.Require().NoError(json.Unmarshal(payload, &msg))
					s.Equal(model.PaymentCallbackEventMessage{ExternalOrderID: "ext-1", Outcome: "success", Amount: 150000}, msg)
					return nil, nil
				})
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			paymentHttp := RegisterPaymentHttp(
				chi.NewRouter(),
				s.Publisher,
				s.Validate,
			)

			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			paymentHttp.callback(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.expectedBody != "" {
				actual := strings.TrimSpace(w.Body.String())
				s.Equal(tc.expectedBody, actual)
			} else {
				s.Empty(w.Body.String())
			}
		})
	}
}
