package graph

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

const graphName = "pipelines"

// Chain 一条链式调用，Stages 是按执行顺序排列的步骤名
type Chain struct {
	Name   string
	Stages []string
}

// PipelineGraph 每条链画成一个 cluster：input -> 步骤... -> output
func PipelineGraph(chains []Chain) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	if err := g.AddAttr(graphName, "rankdir", "LR"); err != nil {
		return nil, err
	}

	for ci, c := range chains {
		cluster := fmt.Sprintf("cluster_%d", ci)
		if err := g.AddSubGraph(graphName, cluster, map[string]string{"label": strconv.Quote(c.Name)}); err != nil {
			return nil, err
		}

		nodes := make([]string, 0, len(c.Stages)+2)
		labels := append(append([]string{"input"}, c.Stages...), "output")
		for si, label := range labels {
			id := fmt.Sprintf("c%d_%d", ci, si)
			attrs := map[string]string{"label": strconv.Quote(label), "shape": "box"}
			if si == 0 || si == len(labels)-1 {
				attrs["shape"] = "ellipse"
			}
			if err := g.AddNode(cluster, id, attrs); err != nil {
				return nil, err
			}
			nodes = append(nodes, id)
		}
		for i := 1; i < len(nodes); i++ {
			if err := g.AddEdge(nodes[i-1], nodes[i], true, nil); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// PipelineDOT 输出 DOT 文本
func PipelineDOT(chains []Chain) (string, error) {
	g, err := PipelineGraph(chains)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// HasCycleDFS 判断有向图里是否有环，流水线图必须无环
// 返回首次形成闭环的起点节点名称
func HasCycleDFS(graph *gographviz.Graph) (bool, string) {
	visited := make(map[string]bool)  // 标记是否访问过节点，避免重复访问
	recStack := make(map[string]bool) // 当前 DFS 路径中的节点

	var dfs func(string) bool
	dfs = func(node string) bool {
		if recStack[node] {
			return true
		}
		if visited[node] {
			return false
		}
		visited[node] = true
		recStack[node] = true
		for _, dst := range graph.Edges.SrcToDsts[node] {
			for _, edge := range dst {
				if dfs(edge.Dst) {
					return true
				}
			}
		}
		recStack[node] = false
		return false
	}

	for _, node := range graph.Nodes.Nodes {
		if dfs(node.Name) {
			return true, node.Name
		}
	}
	return false, ""
}
