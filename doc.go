// Package modelcopy drives long-running model copy operations between
// service resources to completion.
//
// A model copy is asynchronous: the service accepts the request, returns an
// operation location, and the caller polls that location until the copy
// reaches a terminal state. [Poller] encapsulates that protocol: it starts
// the copy at most once, polls on an interval, reports non-terminal progress
// through a callback, and serializes its state so polling can resume in a
// different process.
//
// # Quick Start
//
// Copy a model and wait for completion:
//
//	svc, err := client.New("https://source.cognitiveservices.example.com",
//	    client.WithAPIKey(sourceKey),
//	)
//	if err != nil {
//	    return err
//	}
//	poller, err := modelcopy.NewPoller(svc, modelID, auth,
//	    modelcopy.WithProgress(func(st modelcopy.OperationState) {
//	        log.Printf("copy %s: %s", st.ModelID, st.Status)
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//	info, err := poller.PollUntilDone(ctx)
//
// # Resuming
//
// A poller's state survives process boundaries via resume tokens:
//
//	token, err := poller.ResumeToken()
//	// ... later, possibly elsewhere ...
//	poller, err = modelcopy.ResumePoller(svc, token)
//
// The token carries everything except the service reference, which must be
// supplied again on resume. A copy that was already started is not started a
// second time.
//
// # Cancellation
//
// The service cannot cancel a copy in flight; [Poller.Cancel] always fails.
// Cancelling the context passed to [Poller.PollUntilDone] stops polling
// locally while the server-side operation runs on.
package modelcopy
