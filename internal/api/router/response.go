package router

// Response wraps every successful payload; failures are written by apperr.GlobalErrorHandler.
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func ok[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

type FormulaRequest struct {
	Formula string `json:"formula" example:"(p && q) => r"`
}

type BotRequest struct {
	Text string `json:"text" example:"/truthtable p || !p"`
}
