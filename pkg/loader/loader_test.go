package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadPlainText(t *testing.T) {
	content := "*1.* What is 2+2?\nA) 3\nB) 4 ✔\nC) 5\nD) 6\n"
	path := writeFile(t, "bank.txt", content)

	bank, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if bank.Text != content {
		t.Errorf("Text = %q, want file content unchanged", bank.Text)
	}
	if bank.Source != path {
		t.Errorf("Source = %q, want %q", bank.Source, path)
	}
}

func TestLoadHTMLExtractsText(t *testing.T) {
	html := `<!DOCTYPE html>
<html><head><title>Bank</title></head>
<body>
<nav>menu chrome</nav>
<article>
<p>*1.* Which planet is called the red planet?</p>
<p>A) Venus</p>
<p>B) Mars ✔</p>
<p>C) Jupiter</p>
<p>D) Saturn</p>
</article>
</body></html>`
	path := writeFile(t, "bank.html", html)

	bank, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if strings.Contains(bank.Text, "<p>") {
		t.Errorf("Text still contains markup: %q", bank.Text)
	}
	if !strings.Contains(bank.Text, "Which planet is called the red planet?") {
		t.Errorf("Text is missing the question: %q", bank.Text)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Load() succeeded on a missing file")
	}
}

func TestDetectLanguage(t *testing.T) {
	if got := detectLanguage(""); got != "" {
		t.Errorf("detectLanguage(empty) = %q, want empty", got)
	}

	got := detectLanguage("Which of the following options best completes the sentence below? Choose the correct answer from the list of options provided.")
	if got != "English" {
		t.Errorf("detectLanguage(english text) = %q, want English", got)
	}
}
