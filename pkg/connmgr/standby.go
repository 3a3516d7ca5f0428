// Copyright (c) 2024 The netsched Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package connmgr

import (
	log "github.com/sirupsen/logrus"

	"github.com/netsched/netsched/pkg/common/stringset"
	"github.com/netsched/netsched/pkg/connmgr/job"
)

// standbyTracker tracks, per owner, the set of jobs on whose behalf a
// standby/power-policy exception is currently held. The external exception
// state for an owner is granted iff the held set for that owner is
// non-empty. All methods are called with the controller lock held.
type standbyTracker struct {
	policy  PowerPolicy
	metrics *Metrics

	// held maps owner id to the ids of jobs holding the exception.
	held map[uint32]stringset.StringSet
}

func newStandbyTracker(policy PowerPolicy, metrics *Metrics) *standbyTracker {
	return &standbyTracker{
		policy:  policy,
		metrics: metrics,
		held:    make(map[uint32]stringset.StringSet),
	}
}

// request adds the job to its owner's held-exception set, asking the policy
// collaborator for the exception when the set becomes non-empty.
func (t *standbyTracker) request(j *job.Status) {
	set, ok := t.held[j.OwnerID]
	if !ok {
		set = stringset.New()
		t.held[j.OwnerID] = set
	}
	if set.Contains(j.ID) {
		return
	}
	first := set.Size() == 0
	set.Add(j.ID)
	if first {
		t.policy.RequestStandbyException(j.OwnerID)
		t.metrics.StandbyExceptionRequests.Inc(1)
		log.WithFields(log.Fields{
			"owner_id": j.OwnerID,
			"job_id":   j.ID,
		}).Debug("Requested standby exception")
	}
}

// maybeRevoke removes the job from its owner's held-exception set, revoking
// the exception when the set becomes empty.
func (t *standbyTracker) maybeRevoke(j *job.Status) {
	set, ok := t.held[j.OwnerID]
	if !ok || !set.Contains(j.ID) {
		return
	}
	set.Remove(j.ID)
	if set.Size() == 0 {
		delete(t.held, j.OwnerID)
		t.policy.RevokeStandbyException(j.OwnerID)
		t.metrics.StandbyExceptionRevokes.Inc(1)
		log.WithFields(log.Fields{
			"owner_id": j.OwnerID,
			"job_id":   j.ID,
		}).Debug("Revoked standby exception")
	}
}

// revokeOwner drops the owner's held-exception set entirely, revoking the
// external exception if one was granted. Used on owner removal.
func (t *standbyTracker) revokeOwner(ownerID uint32) {
	set, ok := t.held[ownerID]
	if !ok {
		return
	}
	delete(t.held, ownerID)
	if set.Size() > 0 {
		t.policy.RevokeStandbyException(ownerID)
		t.metrics.StandbyExceptionRevokes.Inc(1)
		log.WithField("owner_id", ownerID).
			Debug("Revoked standby exception on owner removal")
	}
}

// holds reports whether the owner currently holds an exception.
func (t *standbyTracker) holds(ownerID uint32) bool {
	set, ok := t.held[ownerID]
	return ok && set.Size() > 0
}
