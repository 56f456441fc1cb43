package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/events"
	"encore.app/tireorders/mocks/events/event_publisher"
	"encore.app/tireorders/mocks/store/stock_repo"
	"encore.app/tireorders/store/stockorders"
)

func submittedOrder(id, carOrderID string) stockorders.StockOrder {
	return stockorders.StockOrder{
		ID:          id,
		CarOrderID:  carOrderID,
		CarType:     "Tesla Model 3",
		OrderStatus: "submitted",
	}
}

func TestCompleteSubmittedOrders_EmptySweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := stock_repo.NewMockQuerier(ctrl)
	mockPublisher := event_publisher.NewMockEventPublisher(ctrl)
	business := NewStockBusiness(mockRepo, mockPublisher)

	mockRepo.EXPECT().ListSubmittedStockOrders(gomock.Any()).Return(nil, nil)

	report, err := business.CompleteSubmittedOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &SweepReport{}, report)
}

func TestCompleteSubmittedOrders_CompletesAndPublishesEveryOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := []stockorders.StockOrder{
		submittedOrder("so-1", "co-1"),
		submittedOrder("so-2", "co-2"),
		submittedOrder("so-3", "co-3"),
	}

	mockRepo := stock_repo.NewMockQuerier(ctrl)
	mockPublisher := event_publisher.NewMockEventPublisher(ctrl)
	business := NewStockBusiness(mockRepo, mockPublisher)

	mockRepo.EXPECT().ListSubmittedStockOrders(gomock.Any()).Return(orders, nil)
	for _, o := range orders {
		mockRepo.EXPECT().CompleteStockOrder(gomock.Any(), o.ID).Return(nil)
		mockPublisher.EXPECT().
			PublishOrderCompleted(gomock.Any(), events.StockOrder{
				ID:          o.ID,
				CarOrderID:  o.CarOrderID,
				CarType:     o.CarType,
				OrderStatus: "completed",
			}).
			Return("msg-"+o.ID, nil)
	}

	report, err := business.CompleteSubmittedOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &SweepReport{Selected: 3, Completed: 3, Published: 3}, report)
}

func TestCompleteSubmittedOrders_WriteFailureBlocksAllPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := []stockorders.StockOrder{
		submittedOrder("so-1", "co-1"),
		submittedOrder("so-2", "co-2"),
		submittedOrder("so-3", "co-3"),
	}

	mockRepo := stock_repo.NewMockQuerier(ctrl)
	mockPublisher := event_publisher.NewMockEventPublisher(ctrl)
	business := NewStockBusiness(mockRepo, mockPublisher)

	mockRepo.EXPECT().ListSubmittedStockOrders(gomock.Any()).Return(orders, nil)
	// Every write is still attempted despite the middle one failing.
	mockRepo.EXPECT().CompleteStockOrder(gomock.Any(), "so-1").Return(nil)
	mockRepo.EXPECT().CompleteStockOrder(gomock.Any(), "so-2").Return(assert.AnError)
	mockRepo.EXPECT().CompleteStockOrder(gomock.Any(), "so-3").Return(nil)

	report, err := business.CompleteSubmittedOrders(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stock order updates failed")
	assert.Equal(t, &SweepReport{Selected: 3, Completed: 2}, report)
}

func TestCompleteSubmittedOrders_PublishFailureFailsRunAfterAllSettle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := []stockorders.StockOrder{
		submittedOrder("so-1", "co-1"),
		submittedOrder("so-2", "co-2"),
	}

	mockRepo := stock_repo.NewMockQuerier(ctrl)
	mockPublisher := event_publisher.NewMockEventPublisher(ctrl)
	business := NewStockBusiness(mockRepo, mockPublisher)

	mockRepo.EXPECT().ListSubmittedStockOrders(gomock.Any()).Return(orders, nil)
	mockRepo.EXPECT().CompleteStockOrder(gomock.Any(), "so-1").Return(nil)
	mockRepo.EXPECT().CompleteStockOrder(gomock.Any(), "so-2").Return(nil)
	// Both publishes are attempted; one failing fails the run.
	mockPublisher.EXPECT().PublishOrderCompleted(gomock.Any(), gomock.Any()).Return("", assert.AnError)
	mockPublisher.EXPECT().PublishOrderCompleted(gomock.Any(), gomock.Any()).Return("msg-1", nil)

	report, err := business.CompleteSubmittedOrders(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "completion events failed to publish")
	assert.Equal(t, &SweepReport{Selected: 2, Completed: 2, Published: 1}, report)
}

func TestCompleteSubmittedOrders_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := stock_repo.NewMockQuerier(ctrl)
	mockPublisher := event_publisher.NewMockEventPublisher(ctrl)
	business := NewStockBusiness(mockRepo, mockPublisher)

	mockRepo.EXPECT().ListSubmittedStockOrders(gomock.Any()).Return(nil, assert.AnError)

	report, err := business.CompleteSubmittedOrders(context.Background())
	assert.Error(t, err)
	assert.Nil(t, report)
}
