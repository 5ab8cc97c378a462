package langdetect

import "testing"

func BenchmarkDetectGo(b *testing.B) {
	code := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello\")\n}")
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectUntagged(b *testing.B) {
	code := []byte("for i in range(10):\n    total += i\nprint(total)")
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectEmpty(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		Detect(nil)
	}
}
