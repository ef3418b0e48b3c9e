package external

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
)

func TestWeatherClientLoggingDecorator_ResolveByName(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().GetClientName().Return("test-client")
	client.EXPECT().ResolveByName(mock.Anything, "TestCity").Return(&ports.CurrentWeatherData{
		Location:      ports.LocationData{Name: "TestCity"},
		TemperatureC:  22.0,
		ConditionCode: 800,
	}, nil)

	testLogger := &testLogger{entries: []logEntry{}}
	decorator := NewWeatherClientLoggingDecorator(client, testLogger)

	result, err := decorator.ResolveByName(context.Background(), "TestCity")

	require.NoError(t, err)
	assert.Equal(t, 22.0, result.TemperatureC)
	require.Len(t, testLogger.entries, 2)

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-client", requestLog.fields["client"])
	assert.Equal(t, "resolve_by_name", requestLog.fields["operation"])
	assert.Equal(t, "TestCity", requestLog.fields["city"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 22.0, responseLog.fields["temperature"])
	assert.Equal(t, 800, responseLog.fields["condition"])
	assert.Contains(t, responseLog.fields, "duration_ms")
}

func TestWeatherClientLoggingDecorator_Error(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().GetClientName().Return("error-client")
	client.EXPECT().FetchForecast(mock.Anything, 1.0, 2.0).Return(nil, stderrors.New("API rate limit exceeded"))

	testLogger := &testLogger{entries: []logEntry{}}
	decorator := NewWeatherClientLoggingDecorator(client, testLogger)

	result, err := decorator.FetchForecast(context.Background(), 1.0, 2.0)

	assert.EqualError(t, err, "API rate limit exceeded")
	assert.Nil(t, result)
	require.Len(t, testLogger.entries, 2)

	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "forecast", errorLog.fields["operation"])
	assert.Equal(t, 1.0, errorLog.fields["lat"])
	assert.Equal(t, "API rate limit exceeded", errorLog.fields["error"])
}

func TestWeatherClientLoggingDecorator_EnrichmentCalls(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().GetClientName().Return("test-client")
	client.EXPECT().ResolveByCoordinates(mock.Anything, 1.0, 2.0).Return(&ports.LocationData{Name: "Here"}, nil)
	client.EXPECT().FetchAirQuality(mock.Anything, 1.0, 2.0).Return(&ports.AirQualityData{AQI: 2}, nil)
	client.EXPECT().FetchAlerts(mock.Anything, 1.0, 2.0).Return([]ports.AlertData{{Event: "Fog"}}, nil)

	testLogger := &testLogger{entries: []logEntry{}}
	decorator := NewWeatherClientLoggingDecorator(client, testLogger)
	ctx := context.Background()

	loc, err := decorator.ResolveByCoordinates(ctx, 1.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, "Here", loc.Name)

	aq, err := decorator.FetchAirQuality(ctx, 1.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 2, aq.AQI)

	alerts, err := decorator.FetchAlerts(ctx, 1.0, 2.0)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)

	require.Len(t, testLogger.entries, 6)
	assert.Equal(t, "Here", testLogger.entries[1].fields["resolved"])
	assert.Equal(t, 2, testLogger.entries[3].fields["aqi"])
	assert.Equal(t, 1, testLogger.entries[5].fields["alerts"])
	assert.Equal(t, "logged(test-client)", decorator.GetClientName())
}

func TestWeatherClientMetricsDecorator(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	metrics := mocks.NewMetricsCollector(t)

	client.EXPECT().ResolveByName(mock.Anything, "Oslo").Return(&ports.CurrentWeatherData{}, nil)
	client.EXPECT().FetchAlerts(mock.Anything, 1.0, 2.0).Return(nil, stderrors.New("forbidden"))
	client.EXPECT().GetClientName().Return("owm")
	metrics.EXPECT().RecordWeatherAPICall("weather", true, mock.Anything).Return().Once()
	metrics.EXPECT().RecordWeatherAPICall("onecall", false, mock.Anything).Return().Once()

	decorator := NewWeatherClientMetricsDecorator(client, metrics)

	_, err := decorator.ResolveByName(context.Background(), "Oslo")
	assert.NoError(t, err)
	_, err = decorator.FetchAlerts(context.Background(), 1.0, 2.0)
	assert.Error(t, err)
	assert.Equal(t, "owm", decorator.GetClientName())
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}
