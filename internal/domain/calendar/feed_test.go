package calendar

import (
	"testing"
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/leave"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRestDayEvents(t *testing.T) {
	window := Window{Start: mustDate("2026-06-01"), End: mustDate("2026-06-30")}
	events := RestDayEvents(window)

	if len(events) != 4 {
		t.Fatalf("June 2026 has 4 Sundays, got %d markers", len(events))
	}
	for _, e := range events {
		if e.Display != "background" || e.Title != "Sunday Holiday" {
			t.Fatalf("unexpected rest day event %+v", e)
		}
		if mustDate(e.Start).Weekday() != time.Sunday {
			t.Fatalf("rest day marker on %s", e.Start)
		}
	}
}

func TestHolidayEventStyling(t *testing.T) {
	events := HolidayEvents([]leave.Holiday{
		{Name: "Founders Day", Date: mustDate("2026-06-08"), Type: leave.HolidayTypeCompanyEvent},
		{Name: "Poya", Date: mustDate("2026-06-09"), Type: leave.HolidayTypePublic},
	})

	if events[0].BackgroundColor != "#D90429" || events[0].Display != "" {
		t.Fatalf("company event styling wrong: %+v", events[0])
	}
	if events[1].BackgroundColor != "#e76f51" || events[1].Display != "list-item" {
		t.Fatalf("public holiday styling wrong: %+v", events[1])
	}
}

func TestLeaveVisible(t *testing.T) {
	request := leave.LeaveRequest{EmployeeID: "u-emp", SupervisorID: "u-sup"}

	cases := []struct {
		name   string
		viewer auth.Actor
		want   bool
	}{
		{"root sees all", auth.Actor{UserID: "u-root", Role: auth.RoleSupervisor, Root: true}, true},
		{"hr sees all", auth.Actor{UserID: "u-hr", Role: auth.RoleHR}, true},
		{"direct supervisor", auth.Actor{UserID: "u-sup", Role: auth.RoleSupervisor}, true},
		{"other supervisor", auth.Actor{UserID: "u-x", Role: auth.RoleSupervisor}, false},
		{"owner", auth.Actor{UserID: "u-emp", Role: auth.RoleEmployee}, true},
		{"other employee", auth.Actor{UserID: "u-y", Role: auth.RoleEmployee}, false},
	}
	for _, tc := range cases {
		if got := LeaveVisible(tc.viewer, request); got != tc.want {
			t.Fatalf("%s: visible = %v", tc.name, got)
		}
	}
}

func TestBuildFeedMergesAllSources(t *testing.T) {
	viewer := auth.Actor{UserID: "u-emp", Role: auth.RoleEmployee}
	window := Window{Start: mustDate("2026-06-01"), End: mustDate("2026-06-07")}

	holidays := []leave.Holiday{{Name: "Poya", Date: mustDate("2026-06-02"), Type: leave.HolidayTypePublic}}
	requests := []leave.LeaveRequest{
		{EmployeeID: "u-emp", EmployeeName: "Asha", StartDate: mustDate("2026-06-03"), EndDate: mustDate("2026-06-04")},
		{EmployeeID: "u-other", EmployeeName: "Nuwan", StartDate: mustDate("2026-06-03"), EndDate: mustDate("2026-06-03")},
	}
	tasks := []leave.PersonalTask{{Description: "Dentist", Date: mustDate("2026-06-05")}}

	events := BuildFeed(viewer, window, holidays, requests, tasks)

	// One Sunday marker, one holiday, the viewer's own leave, one task.
	// The colleague's leave is filtered out for a plain employee.
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d: %+v", len(events), events)
	}
	var titles []string
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	want := map[string]bool{"Sunday Holiday": true, "Poya": true, "On Leave: Asha": true, "Dentist": true}
	for _, title := range titles {
		if !want[title] {
			t.Fatalf("unexpected event %q in %v", title, titles)
		}
	}
}
