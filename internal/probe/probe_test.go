package probe

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

// nonZeroExit harvests a genuine *exec.ExitError, the error shape winget
// and wsl produce for an empty result.
func nonZeroExit(t *testing.T) error {
	t.Helper()
	err := exec.Command("sh", "-c", "exit 1").Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	return err
}

// fakeExec swaps the command seam for the duration of one test.
func fakeExec(t *testing.T, fn func(name string, args ...string) ([]byte, error)) {
	t.Helper()
	orig := execCommand
	execCommand = fn
	t.Cleanup(func() { execCommand = orig })
}

func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return encoded
}

func TestPackagePresent(t *testing.T) {
	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		assert.Equal(t, "winget", name)
		return []byte("Name  Id                       Version\nGit   Git.Git                  2.44.0\n"), nil
	})
	assert.Equal(t, Present, Package("Git.Git"))
}

func TestPackageAbsentOnNonZeroExit(t *testing.T) {
	exitErr := nonZeroExit(t)
	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		return []byte("No installed package found matching input criteria.\n"), exitErr
	})
	assert.Equal(t, Absent, Package("Git.Git"))
}

func TestPackageUnknownWhenWingetMissing(t *testing.T) {
	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		return nil, &exec.Error{Name: "winget", Err: exec.ErrNotFound}
	})
	assert.Equal(t, Unknown, Package("Git.Git"))
}

func TestSubsystemStates(t *testing.T) {
	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		return utf16le(t, "Default Version: 2\r\n"), nil
	})
	assert.Equal(t, Present, Subsystem())

	exitErr := nonZeroExit(t)
	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		return nil, exitErr
	})
	assert.Equal(t, Absent, Subsystem())

	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		return nil, &exec.Error{Name: "wsl.exe", Err: exec.ErrNotFound}
	})
	assert.Equal(t, Unknown, Subsystem())
}

func TestDistributionMatchesUTF16Listing(t *testing.T) {
	// wsl.exe emits UTF-16LE with CRLF line endings.
	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		assert.Equal(t, []string{"--list", "--quiet"}, args)
		return utf16le(t, "Ubuntu\r\nDebian\r\n"), nil
	})

	assert.Equal(t, Present, Distribution("Ubuntu"))
	assert.Equal(t, Absent, Distribution("Fedora"))
}

func TestDistributionUnknownOnError(t *testing.T) {
	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		return nil, errors.New("cannot run wsl")
	})
	assert.Equal(t, Unknown, Distribution("Ubuntu"))
}

func TestFeatureClassification(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   State
	}{
		{"enabled", "Feature Name : VirtualMachinePlatform\r\nState : Enabled\r\n", Present},
		{"disabled", "Feature Name : VirtualMachinePlatform\r\nState : Disabled\r\n", Absent},
		{"garbage", "Error: 87\r\n", Unknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fakeExec(t, func(name string, args ...string) ([]byte, error) {
				return []byte(tc.output), nil
			})
			assert.Equal(t, tc.want, Feature("VirtualMachinePlatform"))
		})
	}
}

func TestFeatureUnknownOnQueryError(t *testing.T) {
	fakeExec(t, func(name string, args ...string) ([]byte, error) {
		return nil, errors.New("dism unavailable")
	})
	assert.Equal(t, Unknown, Feature("VirtualMachinePlatform"))
}

func TestNetworkStates(t *testing.T) {
	origHead := httpHead
	t.Cleanup(func() { httpHead = origHead })

	httpHead = func(url string) error { return nil }
	assert.Equal(t, Present, Network("https://example.invalid"))

	httpHead = func(url string) error { return errors.New("no route to host") }
	assert.Equal(t, Absent, Network("https://example.invalid"))
}

func TestDecodeConsoleOutputPassthrough(t *testing.T) {
	assert.Equal(t, "plain ascii\n", decodeConsoleOutput([]byte("plain ascii\n")))
}

func TestDecodeConsoleOutputUTF16(t *testing.T) {
	assert.Equal(t, "Ubuntu\r\n", decodeConsoleOutput(utf16le(t, "Ubuntu\r\n")))
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "unknown", Unknown.String())
}
