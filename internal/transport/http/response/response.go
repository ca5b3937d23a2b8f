package response

// Resp is the envelope every endpoint answers with.
type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New normalizes nil data to an empty object so clients never see null.
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data interface{}) Resp { return New(CodeOK, CodeMsgMap[CodeOK], data) }

// Error builds a failure envelope; an empty msg falls back to the code's
// canonical text.
func Error(code int, msg string) Resp {
	if msg == "" {
		msg = CodeMsgMap[code]
	}
	return New(code, msg, struct{}{})
}
