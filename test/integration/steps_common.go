package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"

	"github.com/quevon24/webbase/pkg/model"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc            *TestContext
	response      *http.Response
	responseBody  []byte
	sessionCookie *http.Cookie
	bearerToken   string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the server is running$`, s.theServerIsRunning)
	sc.Step(`^a user "([^"]*)" exists with password "([^"]*)"$`, s.aUserExistsWithPassword)

	sc.Step(`^I GET "([^"]*)"$`, s.iGet)
	sc.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, s.iLogInAs)
	sc.Step(`^I request a token as "([^"]*)" with password "([^"]*)"$`, s.iRequestATokenAs)
	sc.Step(`^I log out$`, s.iLogOut)

	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, s.theResponseShouldContain)
	sc.Step(`^I should have a session cookie$`, s.iShouldHaveASessionCookie)
	sc.Step(`^I should receive a bearer token$`, s.iShouldReceiveABearerToken)
}

func (s *StepsContext) theServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserExistsWithPassword(username, password string) error {
	user := &model.User{Username: username, IsActive: true}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return s.tc.DB.Exec(`
		INSERT INTO auth_user (username, password, is_active) VALUES (?, ?, true)
		ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password
	`, username, user.Password).Error
}

func (s *StepsContext) iGet(path string) error {
	req, err := http.NewRequest(http.MethodGet, s.tc.ServerURL+path, nil)
	if err != nil {
		return err
	}
	if s.sessionCookie != nil {
		req.AddCookie(s.sessionCookie)
	}
	if s.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.bearerToken)
	}
	return s.do(req)
}

func (s *StepsContext) iLogInAs(username, password string) error {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req, err := http.NewRequest(http.MethodPost, s.tc.ServerURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := s.do(req); err != nil {
		return err
	}

	for _, c := range s.response.Cookies() {
		if c.Name == model.SessionCookieName && c.Value != "" {
			s.sessionCookie = c
		}
	}
	return nil
}

func (s *StepsContext) iRequestATokenAs(username, password string) error {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req, err := http.NewRequest(http.MethodPost, s.tc.ServerURL+"/auth/token", bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := s.do(req); err != nil {
		return err
	}

	var res struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(s.responseBody, &res); err == nil {
		s.bearerToken = res.Token
	}
	return nil
}

func (s *StepsContext) iLogOut() error {
	req, err := http.NewRequest(http.MethodPost, s.tc.ServerURL+"/auth/logout", nil)
	if err != nil {
		return err
	}
	if s.sessionCookie != nil {
		req.AddCookie(s.sessionCookie)
	}
	if err := s.do(req); err != nil {
		return err
	}
	s.sessionCookie = nil
	return nil
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(s.responseBody), expected) {
		return fmt.Errorf("expected response to contain %q, got: %s", expected, s.responseBody)
	}
	return nil
}

func (s *StepsContext) iShouldHaveASessionCookie() error {
	if s.sessionCookie == nil {
		return fmt.Errorf("no session cookie recorded")
	}
	return nil
}

func (s *StepsContext) iShouldReceiveABearerToken() error {
	if s.bearerToken == "" {
		return fmt.Errorf("no bearer token recorded")
	}
	return nil
}

func (s *StepsContext) do(req *http.Request) error {
	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	s.response = resp
	s.responseBody = body
	return nil
}
