// Package envcheck — поверхностная проверка env-файла: присутствие
// обязательных переменных и правдоподобие их формата. Файл разбирается
// вручную построчно: инструмент должен сообщать о каждой переменной
// отдельно, чего обычный загрузчик .env не даёт.
package envcheck

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Status — итог проверки одной переменной.
type Status int

const (
	// StatusOK — переменная присутствует и формат правдоподобен.
	StatusOK Status = iota
	// StatusWarn — переменная присутствует, но формат подозрителен.
	// Предупреждение не делает проверку неуспешной.
	StatusWarn
	// StatusMissing — обязательная переменная отсутствует.
	StatusMissing
)

// Rule описывает одну обязательную переменную и её проверку формата.
type Rule struct {
	Key   string
	Check func(value string) bool
	Msg   string
}

// Result — результат применения правила.
type Result struct {
	Key    string
	Status Status
	Msg    string
}

var numericRe = regexp.MustCompile(`^\d+$`)

// DefaultRules — пять переменных, без которых приложение не поднимется.
func DefaultRules() []Rule {
	return []Rule{
		{Key: "DATABASE_URL", Check: func(v string) bool { return strings.HasPrefix(v, "postgres") }, Msg: "debe empezar con postgres://"},
		{Key: "AUTH_JWT_SECRET", Check: func(v string) bool { return len(v) > 20 }, Msg: "parece muy corta"},
		{Key: "CLOUDINARY_CLOUD_NAME", Check: func(v string) bool { return len(v) > 2 }, Msg: "parece vacía"},
		{Key: "CLOUDINARY_API_KEY", Check: func(v string) bool { return numericRe.MatchString(v) }, Msg: "debe ser numérica (usualmente)"},
		{Key: "CLOUDINARY_UPLOAD_PRESET", Check: func(v string) bool { return len(v) > 2 }, Msg: "parece vacía"},
	}
}

// ParseLine разбирает строку KEY=VALUE. Разделение только по первому `=`:
// значение может само содержать `=` (ключи API, base64 и т.п.).
// Пустые строки и комментарии дают ok == false.
func ParseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	key = strings.TrimSpace(parts[0])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(parts[1]), true
}

// ParseFile читает env-файл построчно.
func ParseFile(r io.Reader) (map[string]string, error) {
	env := map[string]string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if key, value, ok := ParseLine(scanner.Text()); ok {
			env[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return env, nil
}

// Evaluate применяет правила к разобранному окружению.
func Evaluate(env map[string]string, rules []Rule) []Result {
	results := make([]Result, 0, len(rules))
	for _, rule := range rules {
		value, present := env[rule.Key]
		switch {
		case !present:
			results = append(results, Result{Key: rule.Key, Status: StatusMissing})
		case !rule.Check(value):
			results = append(results, Result{Key: rule.Key, Status: StatusWarn, Msg: rule.Msg})
		default:
			results = append(results, Result{Key: rule.Key, Status: StatusOK})
		}
	}
	return results
}

// HasMissing сообщает, отсутствует ли хотя бы одна обязательная переменная.
// Предупреждения о формате сюда не входят.
func HasMissing(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusMissing {
			return true
		}
	}
	return false
}
