package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumopay/moneta/pkg/email"
	"github.com/lumopay/moneta/pkg/money"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMoneyAdd(t *testing.T) {
	out, err := execute(t, "money", "add", "1000", "300")
	require.NoError(t, err)
	assert.Equal(t, "JPY 1300.00\n", out)
}

func TestMoneyAdd_CurrencyFlag(t *testing.T) {
	out, err := execute(t, "money", "add", "0.1", "0.2", "--currency", "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD 0.30\n", out)
}

func TestMoneySub_NegativeResult(t *testing.T) {
	_, err := execute(t, "money", "sub", "100", "200")
	assert.ErrorIs(t, err, money.ErrNegativeResult)
}

func TestMoneyMul(t *testing.T) {
	out, err := execute(t, "money", "mul", "100", "3")
	require.NoError(t, err)
	assert.Equal(t, "JPY 300.00\n", out)
}

func TestMoneyMul_InvalidFactor(t *testing.T) {
	_, err := execute(t, "money", "mul", "100", "three")
	assert.ErrorIs(t, err, money.ErrInvalidFactor)
}

func TestMoneyDiv_ByZero(t *testing.T) {
	_, err := execute(t, "money", "div", "100", "0")
	assert.ErrorIs(t, err, money.ErrDivideByZero)

	_, err = execute(t, "money", "div", "100", "0.0")
	assert.ErrorIs(t, err, money.ErrDivideByZero)
}

func TestMoneyCmp(t *testing.T) {
	out, err := execute(t, "money", "cmp", "100", "200")
	require.NoError(t, err)
	assert.Equal(t, "less\n", out)

	out, err = execute(t, "money", "cmp", "200", "100")
	require.NoError(t, err)
	assert.Equal(t, "greater\n", out)

	out, err = execute(t, "money", "cmp", "100", "100.00")
	require.NoError(t, err)
	assert.Equal(t, "equal\n", out)
}

func TestMoneyFmt(t *testing.T) {
	out, err := execute(t, "money", "fmt", "1234.567", "--currency", "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD 1234.57\n", out)
}

func TestMoney_InvalidAmountArg(t *testing.T) {
	_, err := execute(t, "money", "add", "ten", "20")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestEmailCheck(t *testing.T) {
	out, err := execute(t, "email", "check", "User@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com\n", out)
}

func TestEmailCheck_Invalid(t *testing.T) {
	_, err := execute(t, "email", "check", "not-an-address")
	assert.ErrorIs(t, err, email.ErrInvalidFormat)
}

func TestConfigFile_DefaultCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moneta.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency:\n  default: USD\n"), 0o600))

	out, err := execute(t, "money", "add", "1", "2", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "USD 3.00\n", out)
}

func TestConfigFile_FlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moneta.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency:\n  default: USD\n"), 0o600))

	out, err := execute(t, "money", "add", "1", "2", "--config", path, "--currency", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR 3.00\n", out)
}
