package compliance

import (
	"strconv"
	"strings"
)

// Weekday identifies a day of week, Monday=0 … Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w]
}

// ParseWeekday validates a raw weekday identifier.
func ParseWeekday(v int) (Weekday, error) {
	if v < int(Monday) || v > int(Sunday) {
		return 0, &ParseError{Value: strconv.Itoa(v), Reason: "weekday must be between 0 and 6"}
	}
	return Weekday(v), nil
}

// WeekdaySet is a set of weekdays. The zero value is the empty set, which
// means "no working days".
type WeekdaySet uint8

// DefaultWeekdays is Monday to Friday.
const DefaultWeekdays WeekdaySet = 1<<Monday | 1<<Tuesday | 1<<Wednesday | 1<<Thursday | 1<<Friday

func NewWeekdaySet(days ...Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << d
	}
	return s
}

// ParseWeekdays builds a set from raw identifiers, rejecting values outside 0..6.
func ParseWeekdays(raw []int) (WeekdaySet, error) {
	var s WeekdaySet
	for _, v := range raw {
		d, err := ParseWeekday(v)
		if err != nil {
			return 0, err
		}
		s |= 1 << d
	}
	return s, nil
}

func (s WeekdaySet) Has(d Weekday) bool {
	if d < Monday || d > Sunday {
		return false
	}
	return s&(1<<d) != 0
}

func (s WeekdaySet) Len() int {
	n := 0
	for d := Monday; d <= Sunday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Ints returns the members as raw identifiers in ascending order.
func (s WeekdaySet) Ints() []int {
	out := make([]int, 0, 7)
	for d := Monday; d <= Sunday; d++ {
		if s.Has(d) {
			out = append(out, int(d))
		}
	}
	return out
}

func (s WeekdaySet) String() string {
	if s == 0 {
		return "none"
	}
	names := make([]string, 0, 7)
	for d := Monday; d <= Sunday; d++ {
		if s.Has(d) {
			names = append(names, d.String())
		}
	}
	return strings.Join(names, ",")
}
