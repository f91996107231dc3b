// Package client provides the HTTP implementation of the remote calls a
// modelcopy.Poller drives.
//
// A Client targets one service resource. Copying a model involves two:
// the target resource issues a copy authorization (GenerateCopyAuthorization),
// and the source resource executes the copy (BeginCopy, GetCopyResult).
// Client satisfies the modelcopy.Service interface.
package client
