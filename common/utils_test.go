package common

import (
	"context"
	"encoding/json"
	"event-registration/common/contract/mocks"
	"fmt"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"testing"
)

type UtilsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	publisher *mocks.MockPublisher
}

func (s *UtilsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.publisher = mocks.NewMockPublisher(s.ctrl)
}

func TestUtilsTestSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

func (s *UtilsTestSuite) TestPublishMessage() {
	body := map[string]string{"registration_id": "reg-1"}

	tests := []struct {
		name        string
		msgID       string
		body        any
		setupMock   func()
		expectError bool
	}{
		{
			name:  "with message id",
			msgID: "registration:reg-1:created:1",
			body:  body,
			setupMock: func() {
				s.publisher.EXPECT().
					Publish(gomock.Any(), "events.registration.created", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
						s.Len(opts, 1)
						var got map[string]string
						s.Require().NoError(json.Unmarshal(payload, &got))
						s.Equal(body, got)
						return &jetstream.PubAck{}, nil
					})
			},
		},
		{
			name: "without message id",
			body: body,
			setupMock: func() {
				s.publisher.EXPECT().
					Publish(gomock.Any(), "events.registration.created", gomock.Any()).
					Return(&jetstream.PubAck{}, nil)
			},
		},
		{
			name:  "duplicate is not an error",
			msgID: "registration:reg-1:created:1",
			body:  body,
			setupMock: func() {
				s.publisher.EXPECT().
					Publish(gomock.Any(), "events.registration.created", gomock.Any(), gomock.Any()).
					Return(&jetstream.PubAck{Duplicate: true}, nil)
			},
		},
		{
			name:  "publish error",
			msgID: "registration:reg-1:created:1",
			body:  body,
			setupMock: func() {
				s.publisher.EXPECT().
					Publish(gomock.Any(), "events.registration.created", gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("nats down"))
			},
			expectError: true,
		},
		{
			name:        "marshal error",
			body:        make(chan int),
			setupMock:   func() {},
			expectError: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMock()

			err := PublishMessage(context.Background(), s.publisher, "events.registration.created", tt.msgID, tt.body)
			if tt.expectError {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}
