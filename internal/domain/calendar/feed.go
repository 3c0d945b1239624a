package calendar

import (
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/leave"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/payroll"
)

// Event is one feed entry. Color and display fields are presentation
// hints only; overlapping events from different sources all render.
type Event struct {
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end,omitempty"`
	AllDay          bool   `json:"allDay,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
	Display         string `json:"display,omitempty"`
}

type Window struct {
	Start time.Time
	End   time.Time
}

const (
	colorRestDay      = "#ffe5e5"
	colorCompanyEvent = "#D90429"
	colorHoliday      = "#e76f51"
	colorLeave        = "#2a9d8f"
	colorTask         = "#264653"
)

// RestDayEvents emits a background marker for every weekly rest day in the
// window.
func RestDayEvents(window Window) []Event {
	var out []Event
	for day := window.Start; !day.After(window.End); day = day.AddDate(0, 0, 1) {
		if day.Weekday() != payroll.RestDay {
			continue
		}
		out = append(out, Event{
			Title:           "Sunday Holiday",
			Start:           day.Format("2006-01-02"),
			AllDay:          true,
			BackgroundColor: colorRestDay,
			BorderColor:     colorRestDay,
			Display:         "background",
		})
	}
	return out
}

func HolidayEvents(holidays []leave.Holiday) []Event {
	out := make([]Event, 0, len(holidays))
	for _, h := range holidays {
		event := Event{
			Title:  h.Name,
			Start:  h.Date.Format("2006-01-02"),
			AllDay: true,
		}
		if h.Type == leave.HolidayTypeCompanyEvent {
			event.BackgroundColor = colorCompanyEvent
			event.BorderColor = colorCompanyEvent
		} else {
			event.Display = "list-item"
			event.BackgroundColor = colorHoliday
			event.BorderColor = colorHoliday
		}
		out = append(out, event)
	}
	return out
}

// LeaveVisible applies the viewer scoping rule: root and HR see everything,
// a supervisor sees their direct reports and themselves, an employee only
// their own leave.
func LeaveVisible(viewer auth.Actor, request leave.LeaveRequest) bool {
	if viewer.Root || viewer.IsHR() {
		return true
	}
	if viewer.IsSupervisor() {
		return request.SupervisorID == viewer.UserID || request.EmployeeID == viewer.UserID
	}
	return request.EmployeeID == viewer.UserID
}

func LeaveEvents(viewer auth.Actor, requests []leave.LeaveRequest) []Event {
	var out []Event
	for _, r := range requests {
		if !LeaveVisible(viewer, r) {
			continue
		}
		out = append(out, Event{
			Title:           "On Leave: " + r.EmployeeName,
			Start:           r.StartDate.Format("2006-01-02"),
			End:             r.EndDate.Format("2006-01-02"),
			BackgroundColor: colorLeave,
			BorderColor:     colorLeave,
		})
	}
	return out
}

func TaskEvents(tasks []leave.PersonalTask) []Event {
	out := make([]Event, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, Event{
			Title:           t.Description,
			Start:           t.Date.Format("2006-01-02"),
			AllDay:          true,
			BackgroundColor: colorTask,
			BorderColor:     colorTask,
		})
	}
	return out
}

// BuildFeed merges the four sources. No deduplication across sources.
func BuildFeed(viewer auth.Actor, window Window, holidays []leave.Holiday, requests []leave.LeaveRequest, tasks []leave.PersonalTask) []Event {
	events := RestDayEvents(window)
	events = append(events, HolidayEvents(holidays)...)
	events = append(events, LeaveEvents(viewer, requests)...)
	events = append(events, TaskEvents(tasks)...)
	return events
}
