package pycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractWithMarkdown(t *testing.T) {
	input := "```python\nprint('hello')\n```"

	assert.Equal(t, "print('hello')", Extract(input))
}

func TestExtractWithoutLanguage(t *testing.T) {
	input := "```\nprint('hello')\n```"

	assert.Equal(t, "print('hello')", Extract(input))
}

func TestExtractPlainText(t *testing.T) {
	input := "print('hello')"

	assert.Equal(t, "print('hello')", Extract(input))
}

func TestExtractMultiline(t *testing.T) {
	input := "```python\ndef hello():\n    print('world')\n\nhello()\n```"

	assert.Equal(t, "def hello():\n    print('world')\n\nhello()", Extract(input))
}

func TestExtractSurroundedByProse(t *testing.T) {
	input := "Here is your script:\n```python\nprint('hello')\n```\nLet me know if it works."

	assert.Equal(t, "print('hello')", Extract(input))
}

func TestImportsSimple(t *testing.T) {
	code := "import os\nimport sys"

	assert.Equal(t, []string{"os", "sys"}, Imports(code))
}

func TestImportsFrom(t *testing.T) {
	code := "from pathlib import Path\nfrom os import path"

	assert.Equal(t, []string{"os", "pathlib"}, Imports(code))
}

func TestImportsMixed(t *testing.T) {
	code := "import numpy\nfrom pandas import DataFrame\nimport requests"

	assert.Equal(t, []string{"numpy", "pandas", "requests"}, Imports(code))
}

func TestImportsDuplicates(t *testing.T) {
	code := "import os\nfrom os import path\nimport os"

	assert.Equal(t, []string{"os"}, Imports(code))
}

func TestImportsIgnoresComments(t *testing.T) {
	code := "# import fake\nimport real\n# from fake import test"

	assert.Equal(t, []string{"real"}, Imports(code))
}

func TestIsStdlib(t *testing.T) {
	assert.True(t, IsStdlib("os"))
	assert.True(t, IsStdlib("sys"))
	assert.True(t, IsStdlib("json"))
	assert.True(t, IsStdlib("datetime"))
	assert.True(t, IsStdlib("pathlib"))

	assert.False(t, IsStdlib("numpy"))
	assert.False(t, IsStdlib("pandas"))
	assert.False(t, IsStdlib("requests"))
	assert.False(t, IsStdlib("flask"))
	assert.False(t, IsStdlib("django"))
}

func TestThirdParty(t *testing.T) {
	code := "import os\nimport numpy\nfrom requests import get\nimport json"

	assert.Equal(t, []string{"numpy", "requests"}, ThirdParty(code))
}
