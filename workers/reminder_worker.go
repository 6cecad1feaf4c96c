package workers

import (
	"time"

	"paddle-scheduler/services"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// StartReminderScheduler runs the daily reminder sweep in-process at the
// configured hour, for deployments without an external cron service. The
// secret-protected HTTP endpoint stays available either way.
func StartReminderScheduler(reminders *services.ReminderService, hour int) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), 0, 0))),
		gocron.NewTask(func() {
			result, err := reminders.RunDailySweep(time.Now())
			if err != nil {
				logrus.WithError(err).Error("[Scheduler] daily reminder sweep failed")
				return
			}
			logrus.WithFields(logrus.Fields{
				"match_reminders":        result.MatchRemindersSent,
				"availability_reminders": result.AvailabilityRemindersSent,
			}).Info("[Scheduler] ✅ daily reminder sweep completed")
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	logrus.WithField("hour", hour).Info("⏰ in-process reminder scheduler started")
	return sched, nil
}
