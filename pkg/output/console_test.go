package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassedWritesPath(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{out: &buf}

	c.Passed("contract.cpp")

	assert.Contains(t, buf.String(), "contract.cpp is compliant")
}

func TestFailedWritesPath(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{out: &buf}

	c.Failed("contract.cpp")

	assert.Contains(t, buf.String(), "contract.cpp is not compliant")
}

func TestTracefSilentWithoutVerbose(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{errOut: &buf}

	c.Tracef("checking %s", "contract.cpp")

	assert.Empty(t, buf.String())
}

func TestTracefWritesWithVerbose(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{errOut: &buf, verbose: true}

	c.Tracef("checking %s", "contract.cpp")

	assert.Contains(t, buf.String(), "checking contract.cpp")
}

func TestWarnfWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{out: &buf}

	c.Warnf("warning: %d extra argument(s) ignored", 2)

	assert.Contains(t, buf.String(), "warning: 2 extra argument(s) ignored")
}
