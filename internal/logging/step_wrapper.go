package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

// StepWrapper wraps one seeding step with start/complete/error log entries
// and a duration timing. The step's own fields accumulate on the LogData and
// come out on the final entry.
func StepWrapper(
	stepName string,
	log *logrus.Logger,
	step func(ctx context.Context, logData *LogData) error,
) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		logData := NewLogData(log)
		log.Infof("Step.%v.Start", stepName)

		endTimer := logData.AddTiming("duration")
		err := step(ctx, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Step.%v.Error", stepName)
			return err
		}

		logData.Log().Infof("Step.%v.Complete", stepName)
		return nil
	}
}
