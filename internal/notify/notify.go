// Package notify delivers prayer alerts to subscribed devices. The server
// publishes to a per-account MQTT topic; the PWA's push relay subscribes and
// raises the platform notification.
package notify

import (
	"fmt"
	"sync"
)

// AppName is the notification title on every alert.
const AppName = "hyMuslimplus"

// IconPath is the fixed notification icon shipped with the PWA.
const IconPath = "/icon-192.png"

// VibratePattern is the fixed vibration pattern for pushed alerts.
var VibratePattern = []int{100, 50, 100}

// Alert is the notification payload contract shared with the client.
type Alert struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Icon    string `json:"icon"`
	Vibrate []int  `json:"vibrate"`
}

// PrayerAlert builds the fixed-template alert for an upcoming prayer.
func PrayerAlert(prayerName string, minutesBefore int) Alert {
	return Alert{
		Title:   AppName,
		Body:    fmt.Sprintf("%s will begin in %d minutes. Time to prepare.", prayerName, minutesBefore),
		Icon:    IconPath,
		Vibrate: VibratePattern,
	}
}

// FromPush wraps an externally pushed text payload in the standard envelope.
func FromPush(text string) Alert {
	return Alert{
		Title:   AppName,
		Body:    text,
		Icon:    IconPath,
		Vibrate: VibratePattern,
	}
}

// Notifier publishes alerts to one account's devices.
type Notifier interface {
	Publish(userID int, alert Alert) error
}

// Recorder is an in-memory Notifier for tests: it remembers every published
// alert in order.
type Recorder struct {
	mu     sync.Mutex
	alerts []RecordedAlert
}

// RecordedAlert is one captured publication.
type RecordedAlert struct {
	UserID int
	Alert  Alert
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(userID int, alert Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, RecordedAlert{UserID: userID, Alert: alert})
	return nil
}

// Alerts returns a copy of everything published so far.
func (r *Recorder) Alerts() []RecordedAlert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedAlert, len(r.alerts))
	copy(out, r.alerts)
	return out
}
