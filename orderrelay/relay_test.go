package orderrelay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/mocks"

	"encore.app/events"
)

func completionEvent(eventID string) *events.OrderCompleted {
	return &events.OrderCompleted{
		ID:         eventID,
		Source:     events.OrderCompletedSource,
		DetailType: events.OrderCompletedType,
		Detail: events.StockOrder{
			ID:          "7d8f3a11-2c4b-4a6e-9f01-d2e5c6b7a8f9",
			CarOrderID:  "0b4ee8f6-55dd-4b54-b1dd-9e1848f6cf1e",
			CarType:     "Tesla Model 3",
			OrderStatus: "completed",
		},
		PublishedAt: time.Now(),
	}
}

func TestHandleOrderCompleted(t *testing.T) {
	testCases := []struct {
		name              string
		event             *events.OrderCompleted
		expectWorkflow    bool
		mockTemporalError error
		expectedError     string
	}{
		{
			name:           "matching_event_starts_delivery",
			event:          completionEvent("evt-1"),
			expectWorkflow: true,
		},
		{
			name: "foreign_source_is_ignored",
			event: func() *events.OrderCompleted {
				e := completionEvent("evt-2")
				e.Source = "warehouse-audit"
				return e
			}(),
		},
		{
			name: "foreign_detail_type_is_ignored",
			event: func() *events.OrderCompleted {
				e := completionEvent("evt-3")
				e.DetailType = "OrderShipped"
				return e
			}(),
		},
		{
			name:              "redelivered_event_finds_pipeline_running",
			event:             completionEvent("evt-4"),
			expectWorkflow:    true,
			mockTemporalError: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""),
		},
		{
			name:              "temporal_error_is_returned_for_redelivery",
			event:             completionEvent("evt-5"),
			expectWorkflow:    true,
			mockTemporalError: errors.New("temporal unavailable"),
			expectedError:     "temporal unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			service := &Service{temporal: mockTemporal}

			if tc.expectWorkflow {
				mockTemporal.On("ExecuteWorkflow",
					mock.Anything, // context
					mock.Anything, // StartWorkflowOptions
					mock.Anything, // workflow function
					mock.Anything, // workflow params
				).Return(nil, tc.mockTemporalError)
			}

			err := service.HandleOrderCompleted(context.Background(), tc.event)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}

			if !tc.expectWorkflow {
				mockTemporal.AssertNotCalled(t, "ExecuteWorkflow")
			}
		})
	}
}
