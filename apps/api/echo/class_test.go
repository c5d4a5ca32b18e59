package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/shivamudipelly/aora/core/roster"
	"github.com/shivamudipelly/aora/core/schedule"
)

func Test_classApi_create(t *testing.T) {
	app, _ := setup(t)

	okBody := func(overrides map[string]interface{}) []byte {
		body := map[string]interface{}{
			"subject":      "Maths",
			"branch":       "CSE",
			"section":      "A",
			"days":         []string{"Monday", "Thursday"},
			"prefix":       "22B8",
			"roll_numbers": "1-3",
		}
		for k, v := range overrides {
			body[k] = v
		}
		return marchallObj(t, body)
	}

	tests := []httpTest{
		{
			name: "subject is required", method: http.MethodPost, path: "/v1/classes",
			body:     okBody(map[string]interface{}{"subject": ""}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"subject": "this field is required"}),
		},
		{
			name: "branch must be alphanumeric", method: http.MethodPost, path: "/v1/classes",
			body:     okBody(map[string]interface{}{"branch": "CSE/IT"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"branch": "only alphanumeric characters and underscores are allowed"}),
		},
		{
			name: "lateral prefix requires lateral range", method: http.MethodPost, path: "/v1/classes",
			body:     okBody(map[string]interface{}{"lateral_prefix": "23L"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"lateral_roll_numbers": "this field is required"}),
		},
		{
			name: "unknown weekday", method: http.MethodPost, path: "/v1/classes",
			body:     okBody(map[string]interface{}{"days": []string{"Funday"}}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "invalid weekday name"}),
		},
		{
			name: "malformed roll range", method: http.MethodPost, path: "/v1/classes",
			body:     okBody(map[string]interface{}{"roll_numbers": "1-2-3"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: `malformed roll number range "1-2-3"`}),
		},
		{
			name: "open-ended roll range", method: http.MethodPost, path: "/v1/classes",
			body:     okBody(map[string]interface{}{"roll_numbers": "25-"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: `malformed roll number range "25-"`}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_classApi_create_ok(t *testing.T) {
	app, _ := setup(t)

	body := marchallObj(t, map[string]interface{}{
		"subject":              "Maths",
		"branch":               "CSE",
		"section":              "A",
		"days":                 []string{"Monday", "Thursday"},
		"prefix":               "22B8",
		"roll_numbers":         "1-3",
		"lateral_prefix":       "23L",
		"lateral_roll_numbers": "45",
	})

	req, rec := newRequest(http.MethodPost, "/v1/classes", body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var res ClassCreated
	unmarchall(t, rec.Body.Bytes(), &res)
	if len(res.Schedules) != 2 {
		t.Errorf("len(Schedules) = %v; want 2", len(res.Schedules))
	}
	for i, day := range []schedule.Weekday{schedule.Monday, schedule.Thursday} {
		if res.Schedules[i].Day != day {
			t.Errorf("Schedules[%d].Day = %v; want %v", i, res.Schedules[i].Day, day)
		}
		if res.Schedules[i].Subject != "maths" || res.Schedules[i].BranchSection != "csea" {
			t.Errorf("Schedules[%d] class = %v/%v; want maths/csea", i, res.Schedules[i].Subject, res.Schedules[i].BranchSection)
		}
	}
	if len(res.ScheduleFailures) != 0 {
		t.Errorf("ScheduleFailures = %v; want none", res.ScheduleFailures)
	}
	wantRolls := []string{"22B801", "22B802", "22B803", "23L45"}
	if len(res.Roster.Enrolled) != len(wantRolls) {
		t.Fatalf("Enrolled = %v; want %v", res.Roster.Enrolled, wantRolls)
	}
	for i, roll := range wantRolls {
		if res.Roster.Enrolled[i] != roll {
			t.Errorf("Enrolled[%d] = %v; want %v", i, res.Roster.Enrolled[i], roll)
		}
	}

	// the same payload again: both days and every roll number are duplicates
	req, rec = newRequest(http.MethodPost, "/v1/classes", body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	res = ClassCreated{}
	unmarchall(t, rec.Body.Bytes(), &res)
	if len(res.Schedules) != 0 || len(res.ScheduleFailures) != 2 {
		t.Errorf("Schedules = %v, ScheduleFailures = %v; want 0 and 2", res.Schedules, res.ScheduleFailures)
	}
	if len(res.Roster.Enrolled) != 0 || len(res.Roster.Failed) != 4 {
		t.Errorf("Enrolled = %v, Failed = %v; want 0 and 4", res.Roster.Enrolled, res.Roster.Failed)
	}
}

func Test_classApi_query(t *testing.T) {
	app, deps := setup(t)
	ctx := context.Background()

	maths, err := deps.ScheduleSvc.Add(ctx, "maths", "csea", schedule.Monday)
	if err != nil {
		t.Fatalf("Add(): %v", err)
	}
	physics, err := deps.ScheduleSvc.Add(ctx, "physics", "cseb", schedule.Monday)
	if err != nil {
		t.Fatalf("Add(): %v", err)
	}
	chem, err := deps.ScheduleSvc.Add(ctx, "chemistry", "csea", schedule.Friday)
	if err != nil {
		t.Fatalf("Add(): %v", err)
	}

	tests := []httpTest{
		{
			name: "all schedules", method: http.MethodGet, path: "/v1/classes",
			wantCode: http.StatusOK, wantData: marchallList(t, maths, physics, chem),
		},
		{
			name: "filter by day", method: http.MethodGet, path: "/v1/classes?day=monday",
			wantCode: http.StatusOK, wantData: marchallList(t, maths, physics),
		},
		{
			name: "filter by day (empty)", method: http.MethodGet, path: "/v1/classes?day=sunday",
			wantCode: http.StatusOK, wantData: marchallList(t, []interface{}{}...),
		},
		{
			name: "unknown day", method: http.MethodGet, path: "/v1/classes?day=funday",
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "invalid weekday name"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_classApi_reschedule(t *testing.T) {
	app, deps := setup(t)
	ctx := context.Background()

	if _, err := deps.ScheduleSvc.Add(ctx, "maths", "csea", schedule.Monday); err != nil {
		t.Fatalf("Add(): %v", err)
	}
	if _, err := deps.ScheduleSvc.Add(ctx, "maths", "csea", schedule.Friday); err != nil {
		t.Fatalf("Add(): %v", err)
	}

	body := func(oldDay, newDay string) []byte {
		return marchallObj(t, map[string]string{
			"subject": "Maths", "branch": "CSE", "section": "A",
			"old_day": oldDay, "new_day": newDay,
		})
	}

	tests := []httpTest{
		{
			name: "unknown day", method: http.MethodPut, path: "/v1/classes",
			body:     body("Monday", "Funday"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "invalid weekday name"}),
		},
		{
			name: "target day already scheduled", method: http.MethodPut, path: "/v1/classes",
			body:     body("Monday", "Friday"),
			wantCode: http.StatusConflict,
			wantData: marchallObj(t, httpErr{Error: "this class is already scheduled on that day"}),
		},
		{name: "moved", method: http.MethodPut, path: "/v1/classes", body: body("Friday", "Wednesday"), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	days, err := deps.ScheduleSvc.List(ctx)
	if err != nil {
		t.Fatalf("List(): %v", err)
	}
	got := make(map[schedule.Weekday]bool, len(days))
	for _, d := range days {
		got[d.Day] = true
	}
	if len(days) != 2 || !got[schedule.Monday] || !got[schedule.Wednesday] {
		t.Errorf("remaining days = %v; want Monday and Wednesday", days)
	}
}

func Test_classApi_remove(t *testing.T) {
	app, deps := setup(t)
	ctx := context.Background()

	if _, err := deps.ScheduleSvc.Add(ctx, "maths", "csea", schedule.Monday); err != nil {
		t.Fatalf("Add(): %v", err)
	}

	body := marchallObj(t, map[string]string{
		"subject": "Maths", "branch": "CSE", "section": "A", "day": "Monday",
	})
	req, rec := newRequest(http.MethodDelete, "/v1/classes", body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	days, err := deps.ScheduleSvc.List(ctx)
	if err != nil {
		t.Fatalf("List(): %v", err)
	}
	if len(days) != 0 {
		t.Errorf("schedules left = %v; want none", days)
	}
}

func Test_classApi_roster(t *testing.T) {
	app, deps := setup(t)
	ctx := context.Background()
	key := roster.NewClassKey("Maths", "CSE", "A")

	if _, err := deps.RosterSvc.Enroll(ctx, key, []string{"22B801", "22B802"}); err != nil {
		t.Fatalf("Enroll(): %v", err)
	}

	enrollBody := marchallObj(t, map[string]string{
		"subject": "Maths", "branch": "CSE", "section": "A",
		"prefix": "22B8", "roll_numbers": "2-4",
	})

	tests := []httpTest{
		{
			name: "query roster", method: http.MethodGet, path: "/v1/classes/roster?subject=Maths&branch=CSE&section=A",
			wantCode: http.StatusOK, wantData: marchallList(t, "22B801", "22B802"),
		},
		{
			name: "enroll skips duplicates", method: http.MethodPost, path: "/v1/classes/roster",
			body:     enrollBody,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, roster.EnrollResult{
				Enrolled: []string{"22B803", "22B804"},
				Failed: []roster.EnrollFailure{
					{RollNumber: "22B802", Error: roster.ErrRollNumberExists.Error()},
				},
			}),
		},
		{
			name: "remove roster", method: http.MethodDelete, path: "/v1/classes/roster?subject=Maths&branch=CSE&section=A",
			wantCode: http.StatusNoContent,
		},
		{
			name: "query after removal", method: http.MethodGet, path: "/v1/classes/roster?subject=Maths&branch=CSE&section=A",
			wantCode: http.StatusOK, wantData: marchallList(t, []interface{}{}...),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
