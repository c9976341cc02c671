package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aletkin/carminder/internal/mocks/service/notify"
	"github.com/aletkin/carminder/internal/model"
	"github.com/aletkin/carminder/internal/service/urgency"
	"github.com/aletkin/carminder/pkg/webpush"
)

func testSubs(n int) []model.PushSubscription {
	subs := make([]model.PushSubscription, 0, n)
	for i := 0; i < n; i++ {
		subs = append(subs, model.PushSubscription{
			Endpoint: "https://push.example.com/ep-" + string(rune('a'+i)),
			P256dh:   "p256dh-key",
			Auth:     "auth-key",
		})
	}
	return subs
}

func TestDispatcher_AllDeliveriesSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMocksender(ctrl)
	registryMock := mocks.NewMocksubscriptionRemover(ctrl)
	markerMock := mocks.NewMockreminderMarker(ctrl)

	d := NewDispatcher(senderMock, registryMock, markerMock, "/icon.png", 20)

	km := 500
	r := model.Reminder{ID: uuid.New(), ServiceType: "oil change"}
	v := model.Vehicle{Make: "Toyota", Model: "Corolla"}
	cls := urgency.Classification{Kind: urgency.Urgent, KmRemaining: &km}
	subs := testSubs(3)
	now := time.Now()
	strategy := retry.Strategy{}

	for _, sub := range subs {
		senderMock.EXPECT().Send(gomock.Any(), sub, gomock.Any()).Return(nil)
	}
	markerMock.EXPECT().MarkNotified(gomock.Any(), r.ID, now).Return(nil)

	res, err := d.Dispatch(context.Background(), strategy, r, v, cls, subs, now)
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Sent)
	assert.Equal(t, 0, res.Pruned)
}

func TestDispatcher_GoneEndpointIsPruned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMocksender(ctrl)
	registryMock := mocks.NewMocksubscriptionRemover(ctrl)
	markerMock := mocks.NewMockreminderMarker(ctrl)

	d := NewDispatcher(senderMock, registryMock, markerMock, "", 20)

	r := model.Reminder{ID: uuid.New(), ServiceType: "brake service"}
	v := model.Vehicle{Make: "Honda", Model: "Civic"}
	cls := urgency.Classification{Kind: urgency.Overdue}
	subs := testSubs(3)
	now := time.Now()
	strategy := retry.Strategy{}

	senderMock.EXPECT().Send(gomock.Any(), subs[0], gomock.Any()).Return(nil)
	senderMock.EXPECT().Send(gomock.Any(), subs[1], gomock.Any()).Return(webpush.ErrEndpointGone)
	senderMock.EXPECT().Send(gomock.Any(), subs[2], gomock.Any()).Return(nil)

	registryMock.EXPECT().Remove(gomock.Any(), strategy, subs[1].Endpoint).Return(nil)
	markerMock.EXPECT().MarkNotified(gomock.Any(), r.ID, now).Return(nil)

	res, err := d.Dispatch(context.Background(), strategy, r, v, cls, subs, now)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Pruned)
}

func TestDispatcher_TransientFailureDoesNotBlockOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMocksender(ctrl)
	registryMock := mocks.NewMocksubscriptionRemover(ctrl)
	markerMock := mocks.NewMockreminderMarker(ctrl)

	d := NewDispatcher(senderMock, registryMock, markerMock, "", 20)

	r := model.Reminder{ID: uuid.New(), ServiceType: "tire rotation"}
	v := model.Vehicle{Make: "Ford", Model: "Focus"}
	cls := urgency.Classification{Kind: urgency.Urgent}
	subs := testSubs(2)
	now := time.Now()

	senderMock.EXPECT().Send(gomock.Any(), subs[0], gomock.Any()).Return(errors.New("push service timeout"))
	senderMock.EXPECT().Send(gomock.Any(), subs[1], gomock.Any()).Return(nil)
	markerMock.EXPECT().MarkNotified(gomock.Any(), r.ID, now).Return(nil)

	res, err := d.Dispatch(context.Background(), retry.Strategy{}, r, v, cls, subs, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 0, res.Pruned)
}

func TestDispatcher_ZeroSuccessesLeaveReminderUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMocksender(ctrl)
	registryMock := mocks.NewMocksubscriptionRemover(ctrl)
	markerMock := mocks.NewMockreminderMarker(ctrl)

	d := NewDispatcher(senderMock, registryMock, markerMock, "", 20)

	r := model.Reminder{ID: uuid.New(), ServiceType: "inspection"}
	v := model.Vehicle{Make: "Mazda", Model: "3"}
	cls := urgency.Classification{Kind: urgency.Overdue}
	subs := testSubs(2)
	now := time.Now()
	strategy := retry.Strategy{}

	// One endpoint dead, one transient failure: nothing was delivered, so
	// MarkNotified must not be called and the next run retries.
	senderMock.EXPECT().Send(gomock.Any(), subs[0], gomock.Any()).Return(webpush.ErrEndpointGone)
	senderMock.EXPECT().Send(gomock.Any(), subs[1], gomock.Any()).Return(errors.New("timeout"))
	registryMock.EXPECT().Remove(gomock.Any(), strategy, subs[0].Endpoint).Return(nil)

	res, err := d.Dispatch(context.Background(), strategy, r, v, cls, subs, now)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 1, res.Pruned)
}

func TestDispatcher_PruneFailureIsNotEscalated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMocksender(ctrl)
	registryMock := mocks.NewMocksubscriptionRemover(ctrl)
	markerMock := mocks.NewMockreminderMarker(ctrl)

	d := NewDispatcher(senderMock, registryMock, markerMock, "", 20)

	r := model.Reminder{ID: uuid.New(), ServiceType: "oil change"}
	v := model.Vehicle{Make: "VW", Model: "Golf"}
	cls := urgency.Classification{Kind: urgency.Urgent}
	subs := testSubs(1)
	now := time.Now()
	strategy := retry.Strategy{}

	senderMock.EXPECT().Send(gomock.Any(), subs[0], gomock.Any()).Return(webpush.ErrEndpointGone)
	registryMock.EXPECT().Remove(gomock.Any(), strategy, subs[0].Endpoint).Return(errors.New("store unavailable"))

	res, err := d.Dispatch(context.Background(), strategy, r, v, cls, subs, now)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 0, res.Pruned)
}

func TestDispatcher_PayloadIsSharedAcrossSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMocksender(ctrl)
	registryMock := mocks.NewMocksubscriptionRemover(ctrl)
	markerMock := mocks.NewMockreminderMarker(ctrl)

	d := NewDispatcher(senderMock, registryMock, markerMock, "/icons/wrench.png", 20)

	km := 500
	r := model.Reminder{ID: uuid.New(), ServiceType: "oil change"}
	v := model.Vehicle{Make: "Toyota", Model: "Corolla"}
	cls := urgency.Classification{Kind: urgency.Urgent, KmRemaining: &km}
	subs := testSubs(2)
	now := time.Now()

	var (
		mu     sync.Mutex
		bodies [][]byte
	)
	senderMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.PushSubscription, body []byte) error {
			mu.Lock()
			defer mu.Unlock()
			bodies = append(bodies, body)
			return nil
		}).Times(2)
	markerMock.EXPECT().MarkNotified(gomock.Any(), r.ID, now).Return(nil)

	_, err := d.Dispatch(context.Background(), retry.Strategy{}, r, v, cls, subs, now)
	assert.NoError(t, err)

	assert.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])

	var p Payload
	assert.NoError(t, json.Unmarshal(bodies[0], &p))
	assert.Equal(t, "Toyota Corolla", p.Title)
	assert.Equal(t, "oil change due in 500 km", p.Body)
	assert.Equal(t, "/icons/wrench.png", p.Icon)
	assert.Equal(t, r.ID.String(), p.Tag)
}
