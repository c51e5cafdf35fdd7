package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var n int
	executor.Define("-n", Func(func(i int) {
		n = i
	}))
	var args []string
	executor.Positional(func(arg string) {
		args = append(args, arg)
	})

	if err := executor.Execute([]string{
		"a.bf", "-n", "3", "b.bf", "--", "-n", "c",
	}); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}
	if str := strings.Join(args, " "); str != "a.bf b.bf -n c" {
		t.Fatalf("got %s", str)
	}

	err := executor.Execute([]string{"-unknown"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -unknown") {
		t.Fatalf("got %v", err)
	}
}

func TestFuncWithSubs(t *testing.T) {
	executor := NewExecutor()
	var action string
	executor.Define("foo", Func(func() {
		action = "foo"
	}).WithSubs(map[string]*Command{
		"bar": Func(func() {
			action = "bar"
		}),
	}))

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if action != "foo" {
		t.Fatalf("got %s", action)
	}

	if err := executor.Execute([]string{"foo", "bar"}); err != nil {
		t.Fatal(err)
	}
	if action != "bar" {
		t.Fatalf("got %s", action)
	}

	// subs are scoped to the parent
	if err := executor.Execute([]string{"bar"}); err == nil {
		t.Fatal("should error")
	}
}
