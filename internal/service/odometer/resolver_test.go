package odometer

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aletkin/carminder/internal/mocks/service/odometer"
)

func TestResolver_TakesMaxOfBothSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readingsMock := mocks.NewMockvehicleReadings(ctrl)
	r := NewResolver(readingsMock)

	vehicleID := uuid.New()

	tests := []struct {
		name   string
		fuelKm int
		tripKm int
		want   int
	}{
		{name: "fuel log wins", fuelKm: 50200, tripKm: 49800, want: 50200},
		{name: "trip wins", fuelKm: 48000, tripKm: 51000, want: 51000},
		{name: "only fuel data", fuelKm: 30000, tripKm: 0, want: 30000},
		{name: "only trip data", fuelKm: 0, tripKm: 25000, want: 25000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.Reset()

			readingsMock.EXPECT().LatestFuelOdometer(gomock.Any(), vehicleID).Return(tt.fuelKm, nil)
			readingsMock.EXPECT().LatestTripEndOdometer(gomock.Any(), vehicleID).Return(tt.tripKm, nil)

			km, err := r.Resolve(context.Background(), vehicleID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, km)
		})
	}
}

func TestResolver_NoDataMeansZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readingsMock := mocks.NewMockvehicleReadings(ctrl)
	r := NewResolver(readingsMock)

	vehicleID := uuid.New()

	readingsMock.EXPECT().LatestFuelOdometer(gomock.Any(), vehicleID).Return(0, nil)
	readingsMock.EXPECT().LatestTripEndOdometer(gomock.Any(), vehicleID).Return(0, nil)

	km, err := r.Resolve(context.Background(), vehicleID)
	assert.NoError(t, err)
	assert.Equal(t, 0, km)
}

func TestResolver_CachesWithinRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readingsMock := mocks.NewMockvehicleReadings(ctrl)
	r := NewResolver(readingsMock)

	vehicleID := uuid.New()

	readingsMock.EXPECT().LatestFuelOdometer(gomock.Any(), vehicleID).Return(50000, nil).Times(1)
	readingsMock.EXPECT().LatestTripEndOdometer(gomock.Any(), vehicleID).Return(49000, nil).Times(1)

	for i := 0; i < 3; i++ {
		km, err := r.Resolve(context.Background(), vehicleID)
		assert.NoError(t, err)
		assert.Equal(t, 50000, km)
	}
}

func TestResolver_ZeroIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readingsMock := mocks.NewMockvehicleReadings(ctrl)
	r := NewResolver(readingsMock)

	vehicleID := uuid.New()

	// Unknown readings are re-checked on every lookup.
	readingsMock.EXPECT().LatestFuelOdometer(gomock.Any(), vehicleID).Return(0, nil).Times(2)
	readingsMock.EXPECT().LatestTripEndOdometer(gomock.Any(), vehicleID).Return(0, nil).Times(2)

	for i := 0; i < 2; i++ {
		km, err := r.Resolve(context.Background(), vehicleID)
		assert.NoError(t, err)
		assert.Equal(t, 0, km)
	}
}

func TestResolver_ResetClearsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readingsMock := mocks.NewMockvehicleReadings(ctrl)
	r := NewResolver(readingsMock)

	vehicleID := uuid.New()

	readingsMock.EXPECT().LatestFuelOdometer(gomock.Any(), vehicleID).Return(50000, nil).Times(2)
	readingsMock.EXPECT().LatestTripEndOdometer(gomock.Any(), vehicleID).Return(0, nil).Times(2)

	_, err := r.Resolve(context.Background(), vehicleID)
	assert.NoError(t, err)

	r.Reset()

	_, err = r.Resolve(context.Background(), vehicleID)
	assert.NoError(t, err)
}

func TestResolver_SourceErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readingsMock := mocks.NewMockvehicleReadings(ctrl)
	r := NewResolver(readingsMock)

	vehicleID := uuid.New()

	readingsMock.EXPECT().LatestFuelOdometer(gomock.Any(), vehicleID).Return(0, errors.New("store unavailable"))

	_, err := r.Resolve(context.Background(), vehicleID)
	assert.Error(t, err)
}
