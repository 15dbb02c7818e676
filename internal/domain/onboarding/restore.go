package onboarding

// Restore rebuilds the wizard state of a stored profile. batch is the open
// batch of the current iteration, or nil; checklist is its document status.
func Restore(p *Profile, batch *DocumentBatch, checklist []ChecklistItem) State {
	state := InitialState()
	if p == nil {
		return state
	}
	state.Answers = p.Answers()
	if p.IsCompleted() {
		state.Step = StepDone
	} else if p.CurrentStep.IsValid() {
		state.Step = p.CurrentStep
	}

	total := TotalProperties(state.Answers)
	if total < 1 {
		// Nothing to iterate: step 1 has to be answered again.
		state.Step = StepInfo
		return state
	}
	index := p.PropertyIndex
	if index < 1 {
		index = 1
	}
	if index > total {
		index = total
	}
	state.PropertyIndex = index

	if state.Step == StepInfo {
		return state
	}
	state.PerProperty = make([]PropertyAnswers, index)

	current := PropertyAnswers{}
	if batch != nil && state.Step == StepDocuments {
		refinanced := batch.Refinanced
		current.Refinanced = &refinanced
		current.OwnedByCompany = batch.OwnedByCompany
		if batch.EntityID != nil {
			id := *batch.EntityID
			current.CompanyChoice = CompanyExisting
			current.ExistingEntityID = &id
		}
		current.Address = batch.Address
		current.BatchID = batch.ID
		current.Checklist = checklist
	}
	state.PerProperty[index-1] = current
	return state
}
