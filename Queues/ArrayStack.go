package Queues

type arrStack[T any] struct {
	content []T
}

func MakeArrayStack[T any](initCap uint) Stack[T] {
	return &arrStack[T]{make([]T, 0, initCap)}
}

func (this *arrStack[T]) Empty() bool {
	return len(this.content) == 0
}

func (this *arrStack[T]) Size() uint {
	return uint(len(this.content))
}

// Clear the stack, keeping the backing array.
func (this *arrStack[T]) Clear() {
	clear(this.content)
	this.content = this.content[:0]
}

func (this *arrStack[T]) Push(item T) {
	this.content = append(this.content, item)
}

func (this *arrStack[T]) Pop() (T, error) {
	if i := len(this.content) - 1; i < 0 {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[i]
		this.content[i] = *new(T) //drop the reference so popped nodes can be collected.
		this.content = this.content[:i]
		return t, nil
	}
}

func (this *arrStack[T]) Peek() T {
	if len(this.content) == 0 {
		return *new(T)
	}
	return this.content[len(this.content)-1]
}
