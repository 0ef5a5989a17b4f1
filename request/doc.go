// Package request assembles the body sent to the answering backend.
//
// A request names one of the panel's quick actions, carries the page text
// bounded to the token limit, and states the answer language. Questions are
// only sent (and required) for the "pergunta" action.
//
//	req, res, err := request.Build(request.ActionSummarize, pageText, request.LangPTBR, "")
//	if err != nil {
//	    return err
//	}
//	if res.WasTruncated {
//	    showTruncationBadge(res)
//	}
//	body, _ := json.Marshal(req)
//
// Sending the body is the caller's job; this package does no I/O.
package request
