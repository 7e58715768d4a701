package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"runtime"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	"github.com/blang/semver/v4"
	"github.com/sirupsen/logrus"

	"github.com/cri-o/relabel/internal/cmdrunner"
)

// Version is the version of the build.
const Version = "0.2.0"

// Variables injected during build-time
var (
	gitCommit    string // sha1 from git, output of $(git rev-parse HEAD)
	gitTreeState string // state of git tree, either "clean" or "dirty"
	buildDate    string // build date in ISO8601 format, output of $(date -u +'%Y-%m-%dT%H:%M:%SZ')
)

// Info is the top level version structure.
type Info struct {
	Version      string   `json:"version,omitempty"`
	GitCommit    string   `json:"gitCommit,omitempty"`
	GitTreeState string   `json:"gitTreeState,omitempty"`
	BuildDate    string   `json:"buildDate,omitempty"`
	GoVersion    string   `json:"goVersion,omitempty"`
	Compiler     string   `json:"compiler,omitempty"`
	Platform     string   `json:"platform,omitempty"`
	Linkmode     string   `json:"linkmode,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// Get returns the version information, including the dependency list when
// verbose is set.
func Get(verbose bool) (*Info, error) {
	if _, err := semver.Parse(Version); err != nil {
		return nil, fmt.Errorf("version constant %q not semver parsable: %w", Version, err)
	}

	dependencies := []string{}
	if verbose {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return nil, errors.New("unable to retrieve build info")
		}

		for _, d := range info.Deps {
			dependencies = append(
				dependencies, fmt.Sprintf("%s %s %s", d.Path, d.Version, d.Sum),
			)
		}
	}

	return &Info{
		Version:      Version,
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Linkmode:     getLinkmode(),
		Dependencies: dependencies,
	}, nil
}

// String returns the string representation of the version info.
func (i *Info) String() string {
	b := strings.Builder{}
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	v := reflect.ValueOf(*i)
	t := v.Type()
	for f := 0; f < t.NumField(); f++ {
		field := t.Field(f)
		value := v.Field(f)

		if value.Kind() == reflect.Slice {
			if value.Len() == 0 {
				continue
			}

			fmt.Fprintf(w, "%s:\n", field.Name)
			for e := 0; e < value.Len(); e++ {
				fmt.Fprintf(w, "  %s\n", value.Index(e).String())
			}

			continue
		}

		if s := value.String(); s != "" {
			fmt.Fprintf(w, "%s:\t%s\n", field.Name, s)
		}
	}

	w.Flush()

	return b.String()
}

// JSONString returns the JSON representation of the version info.
func (i *Info) JSONString() (string, error) {
	b, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func getLinkmode() string {
	abspath, err := os.Executable()
	if err != nil {
		logrus.Warnf("Unable to find binary to detect link mode: %v", err)
		return ""
	}

	if _, err := exec.LookPath("ldd"); err != nil {
		return ""
	}

	output, err := cmdrunner.CombinedOutput("ldd", abspath)
	if err != nil {
		if strings.Contains(strings.ToLower(string(output)), "not a dynamic executable") {
			return "static"
		}

		logrus.Warnf("Unable to detect link mode of binary: %v", err)
		return ""
	}

	return "dynamic"
}
