package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"pms/internal/domain/employee"
	"pms/internal/domain/goals"
	"pms/internal/domain/roles"
	"pms/internal/domain/weekly"
)

// LoginResult is the /e/login response body.
type LoginResult struct {
	Token    string            `json:"token"`
	Employee employee.Employee `json:"employee"`
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := c.postJSON(ctx, "/e/login", body, &out); err != nil {
		return LoginResult{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

func (c *Client) Employee(ctx context.Context, empCode string) (employee.Employee, error) {
	var out employee.Employee
	err := c.getJSON(ctx, "/e/employee/"+url.PathEscape(empCode), &out)
	return out, err
}

// WeeklyGoals fetches the goal rows and effort rollup for the given weeks.
// An empty weeks list means all weeks.
func (c *Client) WeeklyGoals(ctx context.Context, empID int, weeks []int) (goals.Page, error) {
	path := fmt.Sprintf("/e/wg/%d", empID)
	if len(weeks) > 0 {
		parts := make([]string, len(weeks))
		for i, w := range weeks {
			parts[i] = strconv.Itoa(w)
		}
		path += "?weeks=" + strings.Join(parts, ",")
	}
	var out goals.Page
	err := c.getJSON(ctx, path, &out)
	return out, err
}

func (c *Client) WeekSummaries(ctx context.Context, empID int) (weekly.SummaryPage, error) {
	var out weekly.SummaryPage
	err := c.getJSON(ctx, fmt.Sprintf("/e/ws/%d", empID), &out)
	return out, err
}

func (c *Client) WeekListing(ctx context.Context, empID int) ([]weekly.WeekListing, error) {
	var out []weekly.WeekListing
	err := c.getJSON(ctx, fmt.Sprintf("/e/weeklisting/%d", empID), &out)
	return out, err
}

func (c *Client) FreshWeek(ctx context.Context, empID, weekID int) (weekly.WeekSummary, error) {
	var out weekly.WeekSummary
	err := c.getJSON(ctx, fmt.Sprintf("/e/freshweek/%d/%d", empID, weekID), &out)
	return out, err
}

func (c *Client) GetWeekRow(ctx context.Context, key weekly.RowKey) (weekly.WeekSummary, error) {
	var out weekly.WeekSummary
	err := c.postJSON(ctx, "/e/getwsrow", key, &out)
	return out, err
}

func (c *Client) PostWeekRow(ctx context.Context, row weekly.WeekSummary) error {
	return c.postJSON(ctx, "/e/postwsrow", row, nil)
}

func (c *Client) GetGoalRow(ctx context.Context, key weekly.RowKey) (goals.Goal, error) {
	var out goals.Goal
	err := c.postJSON(ctx, "/e/getwgrow", key, &out)
	return out, err
}

func (c *Client) PostGoalRow(ctx context.Context, row goals.Goal) error {
	return c.postJSON(ctx, "/e/postwgrow", row, nil)
}

// Roles fetches the employee's role assignments. flag is "", "A", or "E".
func (c *Client) Roles(ctx context.Context, empID int, flag string) (roles.Sheet, error) {
	path := fmt.Sprintf("/e/roles/%d", empID)
	if flag != "" {
		path += "/" + url.PathEscape(flag)
	}
	var out roles.Sheet
	err := c.getJSON(ctx, path, &out)
	return out, err
}

func (c *Client) GoalCatalog(ctx context.Context, empID int) ([]goals.CatalogEntry, error) {
	var out []goals.CatalogEntry
	err := c.getJSON(ctx, fmt.Sprintf("/e/goals/%d", empID), &out)
	return out, err
}

func (c *Client) Health(ctx context.Context) error {
	return c.getJSON(ctx, "/health", nil)
}

// Report downloads the rendered weekly report PDF.
func (c *Client) Report(ctx context.Context, empID, weekID int) ([]byte, error) {
	return c.getRaw(ctx, fmt.Sprintf("/e/report/%d/%d", empID, weekID))
}
