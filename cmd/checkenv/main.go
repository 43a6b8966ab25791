package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/GoArmGo/DecorApp/internal/envcheck"
)

// checkenv — проверка env-файла перед запуском: присутствие и
// поверхностный формат пяти обязательных переменных. Отсутствие
// переменной — ненулевой код выхода; предупреждение о формате — нет.
func main() {
	file := flag.String("file", ".env", "путь к env-файлу")
	flag.Parse()

	fmt.Printf("Verificando %s...\n", *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: el archivo %s no existe o no se puede leer: %v\n", *file, err)
		os.Exit(1)
	}
	defer f.Close()

	env, err := envcheck.ParseFile(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error leyendo archivo: %v\n", err)
		os.Exit(1)
	}

	results := envcheck.Evaluate(env, envcheck.DefaultRules())

	errors := 0
	for _, r := range results {
		switch r.Status {
		case envcheck.StatusMissing:
			fmt.Printf("❌ Faltante: %s\n", r.Key)
			errors++
		case envcheck.StatusWarn:
			fmt.Printf("⚠️  Advertencia en %s: %s\n", r.Key, r.Msg)
		default:
			fmt.Printf("✅ %s: presente y formato correcto\n", r.Key)
		}
	}

	if errors > 0 {
		fmt.Printf("\n❌ Se encontraron %d errores.\n", errors)
		os.Exit(1)
	}
	fmt.Printf("\n✨ Todo parece correcto en %s\n", *file)
}
