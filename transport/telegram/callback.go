package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// callbackPrefix namespaces the date-picker callback data so unrelated
// inline buttons never reach our handler.
const callbackPrefix = "rem"

type pickStep string

const (
	stepMonth  pickStep = "month"
	stepDay    pickStep = "day"
	stepHour   pickStep = "hour"
	stepMinute pickStep = "minute"
)

// callbackData is the state of the month → day → hour → minute selection
// flow, carried entirely inside the inline-button callback payload. The
// voice payload ref is not part of it; the final step reads it back from
// the replied-to voice message.
type callbackData struct {
	Step   pickStep
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

func (c callbackData) encode() string {
	return fmt.Sprintf("%s:%s:%d:%d:%d:%d:%d",
		callbackPrefix, c.Step, c.Year, int(c.Month), c.Day, c.Hour, c.Minute)
}

func parseCallbackData(data string) (callbackData, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 7 || parts[0] != callbackPrefix {
		return callbackData{}, fmt.Errorf("unexpected callback data %q", data)
	}

	step := pickStep(parts[1])
	switch step {
	case stepMonth, stepDay, stepHour, stepMinute:
	default:
		return callbackData{}, fmt.Errorf("unexpected callback step %q", parts[1])
	}

	nums := make([]int, 5)
	for i, raw := range parts[2:] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return callbackData{}, fmt.Errorf("invalid number in callback data %q: %w", data, err)
		}
		nums[i] = n
	}

	return callbackData{
		Step:   step,
		Year:   nums[0],
		Month:  time.Month(nums[1]),
		Day:    nums[2],
		Hour:   nums[3],
		Minute: nums[4],
	}, nil
}
