package curriculum

import "fmt"

// Material 一段教学材料, Narration 用于对话与朗读, Board 写在黑板上
type Material struct {
	Narration string
	Board     string
}

// Resolver 根据课题和小节查找讲解内容
// 没有精选内容时按模板生成, 保证课程不会因为缺少内容而中断
type Resolver struct {
	sections     map[string]Material
	examples     map[string]Material
	practices    map[string]Material
	alternatives map[string]string
}

// NewResolver 使用内置的精选内容
func NewResolver() *Resolver {
	return &Resolver{
		sections:     curatedSections,
		examples:     curatedExamples,
		practices:    curatedPractices,
		alternatives: curatedAlternatives,
	}
}

// Explain 讲解某个小节
func (r *Resolver) Explain(topic Topic, section string) Material {
	if m, ok := r.sections[section]; ok {
		return m
	}
	return Material{
		Narration: fmt.Sprintf("Let's learn about **%s**.\n\nThis is an important part of understanding **%s**.\n\n"+
			"Look at the board for the key points.\n\nTake notes if you need to!", section, topic.Name),
		Board: fmt.Sprintf("%s\n\nKey Points:\n\n• What %s means\n• How it connects to %s\n• Where you will use it\n\n"+
			"Example:\n\n\n\nRemember this!", section, section, topic.Name),
	}
}

// Example 课题的例题
func (r *Resolver) Example(topic Topic) Material {
	if m, ok := r.examples[topic.Name]; ok {
		return m
	}
	return Material{
		Narration: fmt.Sprintf("Here's a worked example for **%s**...\n\nStep 1: Read the question\nStep 2: Apply the method\n"+
			"Step 3: Calculate\nStep 4: Check your answer", topic.Name),
		Board: fmt.Sprintf("%s\n\nStep-by-step solution...\n\n1. Read\n2. Apply\n3. Calculate\n4. Check", topic.Name),
	}
}

// Practice 课题的练习题, Narration 即题目
func (r *Resolver) Practice(topic Topic) Material {
	if m, ok := r.practices[topic.Name]; ok {
		return m
	}
	return Material{
		Narration: fmt.Sprintf("Try this practice question on **%s**...\n\nShow your working!", topic.Name),
		Board:     fmt.Sprintf("%s\n\nYour question here...\n\n\nWorking:\n\n\n\nAnswer: ?", topic.Name),
	}
}

// Alternative 换一种说法重新讲解
func (r *Resolver) Alternative(topic Topic) string {
	if s, ok := r.alternatives[topic.Name]; ok {
		return s
	}
	return "Let me try a different approach...\n\nSometimes a concept needs to be explained multiple ways.\n\n" +
		"Think about it like this:\n- Break it into smaller steps\n- Use a real-world example\n- Draw a diagram if it helps"
}

// Hint 远程导师不可用时的本地提示
func (r *Resolver) Hint(topic Topic, _ string) string {
	return fmt.Sprintf("Great question! Let me help you with that.\n\nBased on what we're learning about **%s**:\n\n"+
		"Think about the key concepts we've covered...\n\n1. What information do you have?\n2. What are you trying to find?\n"+
		"3. Which method should you use?\n\nShow me your working and I'll give you feedback!", topic.Name)
}
