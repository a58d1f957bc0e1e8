package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrayerAlert(t *testing.T) {
	alert := PrayerAlert("Maghrib", 10)
	assert.Equal(t, "hyMuslimplus", alert.Title)
	assert.Equal(t, "Maghrib will begin in 10 minutes. Time to prepare.", alert.Body)
	assert.Equal(t, "/icon-192.png", alert.Icon)
	assert.Equal(t, []int{100, 50, 100}, alert.Vibrate)
}

func TestFromPush(t *testing.T) {
	alert := FromPush("Waktunya membaca Al-Quran")
	assert.Equal(t, "hyMuslimplus", alert.Title)
	assert.Equal(t, "Waktunya membaca Al-Quran", alert.Body)
	assert.Equal(t, IconPath, alert.Icon)
}

func TestRecorderKeepsOrder(t *testing.T) {
	r := NewRecorder()
	assert.NoError(t, r.Publish(1, PrayerAlert("Subuh", 5)))
	assert.NoError(t, r.Publish(2, PrayerAlert("Dzuhur", 5)))

	alerts := r.Alerts()
	assert.Len(t, alerts, 2)
	assert.Equal(t, 1, alerts[0].UserID)
	assert.Equal(t, 2, alerts[1].UserID)
}
