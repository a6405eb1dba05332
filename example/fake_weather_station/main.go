package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/lmittmann/tint"

	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
	"github.com/nlowe/hamqtt/entity"
	hlog "github.com/nlowe/hamqtt/log"
	"github.com/nlowe/hamqtt/mqtt"
	"github.com/nlowe/hamqtt/unit"
)

func main() {
	hlog.To(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	brokerURL, err := url.Parse("mqtt://0.0.0.0:1883")
	if err != nil {
		panic(err)
	}

	w, disconnect, err := configureMQTT(ctx, brokerURL)
	if err != nil {
		panic(err)
	}

	log := hlog.ForComponent("example")
	log.Info("Starting Up")

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		log.Info("Disconnecting from mqtt")
		if err := disconnect(shutdownCtx); err != nil {
			log.With(hlog.Error(err)).Error("Failed to disconnect from mqtt")
		}
	}()

	topicPrefix := "hamqtt/example/weather"

	common := entity.Common{
		TopicPrefix: topicPrefix,
		Origin:      hamqtt.DefaultOrigin,
		Device: hamqtt.Device{
			Name:        "Example Weather Station",
			Identifiers: []string{"hamqtt/example/fake_weather_station"},
		},
	}
	common.Availability = hamqtt.AvailabilityTopic("~/available")

	device, err := hamqtt.NewDeviceComponents(common.Origin, common.Device)
	if err != nil {
		panic(err)
	}

	device.TopicPrefix = topicPrefix
	device.AddComponent("temperature", entity.Sensor{
		Common:            common,
		Name:              "Temperature",
		UniqueID:          "example.weather.temperature",
		DeviceClass:       deviceclass.SensorTemperature,
		StateClass:        entity.StateClassMeasurement,
		StateTopic:        "~/temperature",
		UnitOfMeasurement: unit.TemperatureCelsius,
	}).AddComponent("pressure", entity.Sensor{
		Common:            common,
		Name:              "Pressure",
		UniqueID:          "example.weather.pressure",
		DeviceClass:       deviceclass.SensorAtmosphericPressure,
		StateClass:        entity.StateClassMeasurement,
		StateTopic:        "~/pressure",
		UnitOfMeasurement: unit.PressureHectopascal,
	}).AddComponent("raining", entity.BinarySensor{
		Common:      common,
		Name:        "Raining",
		UniqueID:    "example.weather.raining",
		DeviceClass: deviceclass.BinarySensorMoisture,
		StateTopic:  "~/raining",
	})

	ha := hamqtt.New(w, hamqtt.DefaultDiscoveryPrefix)

	log.Info("Publishing discovery payload")
	if err := ha.PublishDevice(ctx, device); err != nil {
		panic(err)
	}

	publishState := func() {
		temperature := 15 + rand.Float64()*10
		pressure := 990 + rand.Float64()*40
		raining := "OFF"
		if rand.IntN(4) == 0 {
			raining = "ON"
		}

		log.With(
			slog.Float64("temperature", temperature),
			slog.Float64("pressure", pressure),
			slog.String("raining", raining),
		).Info("Publishing state")

		opts := mqtt.WriteOptions{QoS: mqtt.QOSAtLeastOnce, Retain: true}
		for topic, payload := range map[string][]byte{
			mqtt.JoinTopic(topicPrefix, "available"):   []byte(hamqtt.PayloadAvailable),
			mqtt.JoinTopic(topicPrefix, "temperature"): []byte(formatReading(temperature)),
			mqtt.JoinTopic(topicPrefix, "pressure"):    []byte(formatReading(pressure)),
			mqtt.JoinTopic(topicPrefix, "raining"):     []byte(raining),
		} {
			if err := w.WriteTopic(ctx, topic, opts, payload); err != nil {
				log.With(hlog.Error(err), slog.String("topic", topic)).Error("Failed to publish state")
			}
		}
	}

	publishState()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Goodbye!")
			return
		case <-ticker.C:
			publishState()
		}
	}
}

func formatReading(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
