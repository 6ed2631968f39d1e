package cmd

import (
	"bytes"
	"testing"

	"github.com/cisco-open/hashtool/test"
	"github.com/stretchr/testify/assert"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	if args == nil {
		args = []string{}
	}
	rootCmd := NewRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunRootHelp(t *testing.T) {
	out, err := runCommand(t, "--help")
	assert.Nil(t, err)
	assert.Contains(t, out, "reports it as JSON")
}

func TestRunRootDefaultAlgo(t *testing.T) {
	t.Setenv("DATA", "hello")
	t.Setenv("ALGO", "")
	out, err := runCommand(t)
	assert.Nil(t, err)
	assert.Equal(t, `{"algo":"sha256","hash":"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"}`+"\n", out)
}

func TestRunRootMd5(t *testing.T) {
	t.Setenv("DATA", "hello")
	t.Setenv("ALGO", "md5")
	out, err := runCommand(t)
	assert.Nil(t, err)
	assert.Equal(t, `{"algo":"md5","hash":"5d41402abc4b2a76b9719d911017c592"}`+"\n", out)
}

func TestRunRootFlagOverridesEnv(t *testing.T) {
	t.Setenv("DATA", "hello")
	t.Setenv("ALGO", "sha256")
	out, err := runCommand(t, "--algo", "md5")
	assert.Nil(t, err)
	assert.Equal(t, `{"algo":"md5","hash":"5d41402abc4b2a76b9719d911017c592"}`+"\n", out)
}

func TestRunRootDataFlag(t *testing.T) {
	t.Setenv("DATA", "")
	t.Setenv("ALGO", "")
	out, err := runCommand(t, "--data", "hello")
	assert.Nil(t, err)
	assert.Equal(t, `{"algo":"sha256","hash":"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"}`+"\n", out)
}

func TestRunRootMissingData(t *testing.T) {
	t.Setenv("DATA", "")
	t.Setenv("ALGO", "")
	_, err := runCommand(t)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "data argument must be provided")
}

func TestRunRootUnsupportedAlgo(t *testing.T) {
	t.Setenv("DATA", "x")
	t.Setenv("ALGO", "sha1")
	_, err := runCommand(t)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "sha1")
	assert.Contains(t, err.Error(), "sha256, md5")
}

func TestRunRootConfigDefault(t *testing.T) {
	path := test.TmpFile(t, `
	[defaults]
	algo = 'md5'
`)
	t.Setenv("DATA", "hello")
	t.Setenv("ALGO", "")
	out, err := runCommand(t, "--config", path)
	assert.Nil(t, err)
	assert.Equal(t, `{"algo":"md5","hash":"5d41402abc4b2a76b9719d911017c592"}`+"\n", out)
}
