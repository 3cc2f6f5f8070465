package k6summary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handleSummaryJSON = `{
  "root_group": {
    "name": "", "path": "", "id": "d41d8cd98f00b204e9800998ecf8427e",
    "groups": [
      {
        "name": "login", "path": "::login", "id": "1",
        "groups": [
          {
            "name": "token", "path": "::login::token", "id": "2",
            "groups": [],
            "checks": [
              {"name": "QA-2 token issued", "path": "::login::token::QA-2 token issued", "id": "c2", "passes": 3, "fails": 0}
            ]
          }
        ],
        "checks": [
          {"name": "QA-1 status is 200", "path": "::login::QA-1 status is 200", "id": "c1", "passes": 9, "fails": 1}
        ]
      },
      {
        "name": "logout", "path": "::logout", "id": "3",
        "groups": []
      }
    ],
    "checks": []
  },
  "metrics": {
    "iteration_duration": {
      "type": "trend", "contains": "time",
      "values": {"min": 1.234, "max": 5678, "avg": 250.5, "med": 200, "p(90)": 400, "p(95)": 450}
    }
  }
}`

const summaryExportJSON = `{
  "root_group": {
    "name": "", "path": "", "id": "d41d8cd98f00b204e9800998ecf8427e",
    "groups": {
      "login": {
        "name": "login", "path": "::login", "id": "1",
        "groups": {
          "token": {
            "name": "token", "path": "::login::token", "id": "2",
            "groups": {},
            "checks": {
              "QA-2 token issued": {"name": "QA-2 token issued", "path": "::login::token::QA-2 token issued", "id": "c2", "passes": 3, "fails": 0}
            }
          }
        },
        "checks": {
          "QA-1 status is 200": {"name": "QA-1 status is 200", "path": "::login::QA-1 status is 200", "id": "c1", "passes": 9, "fails": 1}
        }
      },
      "logout": {
        "name": "logout", "path": "::logout", "id": "3",
        "groups": {}
      }
    },
    "checks": {}
  },
  "metrics": {
    "iteration_duration": {"min": 1.234, "max": 5678, "avg": 250.5, "med": 200, "p(90)": 400, "p(95)": 450}
  }
}`

func Test_GivenHandleSummaryOutput_WhenParsed_ThenGroupsAreFlattenedInPreOrder(t *testing.T) {
	// When
	summary, err := Parse(strings.NewReader(handleSummaryJSON))

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"::login", "::login::token", "::logout"}, groupPaths(summary.RootGroup.Flatten()))
}

func Test_GivenSummaryExportOutput_WhenParsed_ThenMatchesHandleSummaryLayout(t *testing.T) {
	// Given
	expected, err := Parse(strings.NewReader(handleSummaryJSON))
	require.NoError(t, err)

	// When
	summary, err := Parse(strings.NewReader(summaryExportJSON))

	// Then
	require.NoError(t, err)
	assert.Equal(t, groupPaths(expected.RootGroup.Flatten()), groupPaths(summary.RootGroup.Flatten()))
	assert.Equal(t, expected.RootGroup.Groups[0].Checks, summary.RootGroup.Groups[0].Checks)
	assert.Equal(t, expected.IterationDurationMin(), summary.IterationDurationMin())
	assert.Equal(t, expected.IterationDurationMax(), summary.IterationDurationMax())
}

func Test_GivenObjectLayout_WhenParsed_ThenMemberOrderIsKept(t *testing.T) {
	// Given
	input := `{"root_group": {"groups": {
		"zeta": {"path": "::zeta"},
		"alpha": {"path": "::alpha"},
		"mid": {"path": "::mid"}
	}}}`

	// When
	summary, err := Parse(strings.NewReader(input))

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"::zeta", "::alpha", "::mid"}, groupPaths(summary.RootGroup.Flatten()))
}

func Test_GivenIterationDurationValues_WhenParsed_ThenMinAndMaxAreRead(t *testing.T) {
	// When
	summary, err := Parse(strings.NewReader(handleSummaryJSON))

	// Then
	require.NoError(t, err)
	assert.Equal(t, 1.234, summary.IterationDurationMin())
	assert.Equal(t, 5678.0, summary.IterationDurationMax())
	assert.True(t, summary.Metrics.IterationDuration.Max.Set)
}

func Test_GivenMissingIterationDuration_WhenParsed_ThenDefaultsToZero(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no metrics", input: `{"root_group": {}}`},
		{name: "no iteration_duration", input: `{"root_group": {}, "metrics": {"http_reqs": {"values": {"count": 3}}}}`},
		{name: "no values", input: `{"metrics": {"iteration_duration": {"type": "trend"}}}`},
		{name: "null min and max", input: `{"metrics": {"iteration_duration": {"values": {"min": null, "max": null}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := Parse(strings.NewReader(tt.input))

			require.NoError(t, err)
			assert.Equal(t, 0.0, summary.IterationDurationMin())
			assert.Equal(t, 0.0, summary.IterationDurationMax())
			assert.False(t, summary.Metrics.IterationDuration.Max.Set)
		})
	}
}

func Test_GivenGroupWithoutChecks_WhenFlattened_ThenGroupIsStillListed(t *testing.T) {
	// Given
	summary, err := Parse(strings.NewReader(handleSummaryJSON))
	require.NoError(t, err)

	// When
	groups := summary.RootGroup.Flatten()

	// Then
	require.Len(t, groups, 3)
	assert.Equal(t, "logout", groups[2].Name)
	assert.Empty(t, groups[2].Checks)
}

func Test_GivenCheckWithoutPath_WhenLabelRequested_ThenNameIsUsed(t *testing.T) {
	assert.Equal(t, "::g::QA-1 ok", Check{Name: "QA-1 ok", Path: "::g::QA-1 ok"}.Label())
	assert.Equal(t, "QA-1 ok", Check{Name: "QA-1 ok"}.Label())
}

func Test_GivenInvalidGroups_WhenParsed_ThenFails(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"root_group": {"groups": "login"}}`))

	require.Error(t, err)
}

func Test_GivenSummaryFile_WhenLoaded_ThenParsesIt(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, os.WriteFile(pth, []byte(handleSummaryJSON), 0600))

	// When
	summary, err := Load(pth)

	// Then
	require.NoError(t, err)
	assert.Len(t, summary.RootGroup.Groups, 2)
}

func Test_GivenMissingFile_WhenLoaded_ThenFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
}

func groupPaths(groups []Group) []string {
	var paths []string
	for _, group := range groups {
		paths = append(paths, group.Path)
	}
	return paths
}
